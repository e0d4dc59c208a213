// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidJSON wraps request body decoding failures.
var ErrInvalidJSON = errors.New("invalid JSON in request body")

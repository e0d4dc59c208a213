// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNilBus is returned by NewHandlers when no event bus is supplied; the
// climate listener has nothing to subscribe to.
var errNilBus = errors.New("event bus is nil")

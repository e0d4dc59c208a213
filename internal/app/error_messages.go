// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// climate-adjuster handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidJSON is returned when the request body is not a JSON
	// document of the expected shape.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a decoded request fails
	// validation (e.g. missing name, non-finite number).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgMalformedName is returned when a record name does not follow the
	// namespace:path grammar.
	MsgMalformedName = "malformed record name"

	// MsgUnknownEnumValue is returned when a precipitation or temperature
	// modifier name is not recognised.
	MsgUnknownEnumValue = "unknown enumeration value"

	// MsgOverridesUnavailable is returned when the override file failed to
	// load at startup and patching is disabled.
	MsgOverridesUnavailable = "climate overrides are not loaded"

	// MsgRequestTimeout is returned when the request deadline passed before
	// the climate query was resolved.
	MsgRequestTimeout = "request timed out"

	// MsgRequestCanceled is returned when the request was cancelled before
	// the climate query was resolved.
	MsgRequestCanceled = "request canceled"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the climate domain types. The typed errors below wrap
// them, so callers can match with [errors.Is] or extract details with
// [errors.As].
var (
	// ErrMalformedKey is returned when a string does not satisfy the
	// "namespace:path" key grammar.
	ErrMalformedKey = errors.New("malformed key")

	// ErrUnknownEnumValue is returned when an enumeration name matches none
	// of the known constants.
	ErrUnknownEnumValue = errors.New("unknown enum value")
)

// MalformedKeyError describes a key string rejected by [ParseKey].
type MalformedKeyError struct {
	Raw    string
	Reason string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedKey, e.Raw, e.Reason)
}

func (e *MalformedKeyError) Unwrap() error {
	return ErrMalformedKey
}

// UnknownEnumValueError describes an enumeration name that could not be
// resolved. Enum is the enumeration type name, e.g. "precipitation".
type UnknownEnumValueError struct {
	Enum  string
	Value string
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("%s for %s: %q", ErrUnknownEnumValue, e.Enum, e.Value)
}

func (e *UnknownEnumValueError) Unwrap() error {
	return ErrUnknownEnumValue
}

package codec

import "errors"

var (
	// ErrMalformedDocument is returned when the input is not a JSON object
	// of objects.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrDecodingEntry wraps the key or enumeration error of a single entry.
	ErrDecodingEntry = errors.New("error decoding entry")

	// ErrEncodingEntry is returned when an in-memory override holds a value
	// that has no persisted name.
	ErrEncodingEntry = errors.New("error encoding entry")

	// ErrEncodingDocument wraps a JSON marshaling failure.
	ErrEncodingDocument = errors.New("error encoding document")

	// ErrUnknownShape is returned by ParseShape for unrecognised names.
	ErrUnknownShape = errors.New("unknown host shape")
)

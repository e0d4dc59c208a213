package store

import "errors"

// Sentinel errors returned while loading or persisting the override file.
// Callers should use [errors.Is] to match against these values; the
// underlying I/O or decode error stays in the chain.
var (
	// ErrReadingOverrides is returned when the override file exists but
	// cannot be read.
	ErrReadingOverrides = errors.New("error reading overrides file")

	// ErrDecodingOverrides is returned when the override file content is not
	// a valid override document (malformed key, unknown enum value, bad JSON).
	ErrDecodingOverrides = errors.New("error decoding overrides file")

	// ErrWritingOverrides is returned when the override file cannot be
	// written, including the empty document created on first run.
	ErrWritingOverrides = errors.New("error writing overrides file")

	// ErrCreatingConfigDir is returned when the directory holding the
	// override file cannot be created.
	ErrCreatingConfigDir = errors.New("error creating config directory")
)

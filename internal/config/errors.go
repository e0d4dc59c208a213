package config

import "errors"

// Errors returned while building the configuration. Validation errors wrap
// the underlying cause so callers can report the offending value.
var (
	// ErrParsingFlags indicates that the command-line arguments could not be
	// parsed (unknown flag, bad value, or -h).
	ErrParsingFlags = errors.New("error parsing flags")
	// ErrParsingEnv indicates that an environment variable holds a value
	// that cannot be converted (for example, SERVER_REQUEST_TIMEOUT=soon).
	ErrParsingEnv = errors.New("error parsing environment")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty mod name or an unknown host shape).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid override file settings
	// (for example, an empty config root or file name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP listener settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

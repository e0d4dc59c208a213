package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName                  = errors.New("name is required")
	ErrInvalidPrecipitation       = errors.New("invalid precipitation")
	ErrInvalidTemperatureModifier = errors.New("invalid temperature modifier")
	ErrNonFiniteTemperature       = errors.New("temperature must be a finite number")
	ErrNonFiniteDownfall          = errors.New("downfall must be a finite number")
)

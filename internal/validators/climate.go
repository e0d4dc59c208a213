package validators

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/climate-adjuster/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the key of a patch request.
	FieldName = "name"

	// FieldClimate targets the baseline record of a patch request; it applies
	// every climate field below.
	FieldClimate = "climate"

	FieldPrecipitation       = "precipitation"
	FieldTemperatureModifier = "temperature_modifier"
	FieldTemperature         = "temperature"
	FieldDownfall            = "downfall"
)

var climateFields = []string{FieldPrecipitation, FieldTemperatureModifier, FieldTemperature, FieldDownfall}

// ClimateValidator implements the Validator interface for host-supplied
// climate records and patch requests.
//
// Baselines are not range-checked: clamping applies to user overrides only,
// and the host owns its own values. They must still be finite and use
// declared enumeration values.
type ClimateValidator struct{}

func NewClimateValidator() Validator {
	return &ClimateValidator{}
}

// Validate dispatches on the type of obj: models.PatchRequest or
// models.Climate, by value or pointer.
func (v *ClimateValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PatchRequest:
		return v.validatePatchRequest(ctx, value, fields...)
	case *models.PatchRequest:
		return v.validatePatchRequest(ctx, *value, fields...)

	case models.Climate:
		return v.validateClimate(ctx, value, fields...)
	case *models.Climate:
		return v.validateClimate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validatePatchRequest checks the name and the baseline.
//
// Default validated fields: Name, Climate.
func (v *ClimateValidator) validatePatchRequest(ctx context.Context, request models.PatchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldClimate}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if request.Name.IsZero() {
				return ErrEmptyName
			}
		case FieldClimate:
			if err := v.validateClimate(ctx, request.Climate); err != nil {
				return fmt.Errorf("climate of %q: %w", request.Name, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateClimate checks a complete climate record.
//
// Default validated fields: Precipitation, TemperatureModifier, Temperature,
// Downfall.
func (v *ClimateValidator) validateClimate(ctx context.Context, climate models.Climate, fields ...string) error {
	if len(fields) == 0 {
		fields = climateFields
	}

	for _, f := range fields {
		switch f {
		case FieldPrecipitation:
			if !climate.Precipitation.Valid() {
				return ErrInvalidPrecipitation
			}
		case FieldTemperatureModifier:
			if !climate.TemperatureModifier.Valid() {
				return ErrInvalidTemperatureModifier
			}
		case FieldTemperature:
			if !isFinite(climate.Temperature) {
				return ErrNonFiniteTemperature
			}
		case FieldDownfall:
			if !isFinite(climate.Downfall) {
				return ErrNonFiniteDownfall
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

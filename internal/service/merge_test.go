package service

import (
	"testing"

	"github.com/MKhiriev/climate-adjuster/models"
	"github.com/stretchr/testify/assert"
)

var testBaseline = models.Climate{
	Precipitation:       models.PrecipitationNone,
	Temperature:         2.0,
	TemperatureModifier: models.TemperatureModifierNone,
	Downfall:            0.0,
}

// TestMerge_FieldPrecedence verifies that each present field wins and every
// absent field keeps the baseline.
func TestMerge_FieldPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		override models.ClimateOverride
		want     models.Climate
	}{
		{
			name:     "no-op override is identity",
			override: models.ClimateOverride{},
			want:     testBaseline,
		},
		{
			name:     "temperature only",
			override: models.ClimateOverride{Temperature: models.Ptr[float32](0.5)},
			want:     models.Climate{Temperature: 0.5},
		},
		{
			name:     "downfall and precipitation",
			override: models.ClimateOverride{Downfall: models.Ptr[float32](0.9), Precipitation: models.Ptr(models.PrecipitationRain)},
			want:     models.Climate{Temperature: 2.0, Downfall: 0.9, Precipitation: models.PrecipitationRain},
		},
		{
			name:     "temperature modifier",
			override: models.ClimateOverride{TemperatureModifier: models.Ptr(models.TemperatureModifierFrozen)},
			want:     models.Climate{Temperature: 2.0, TemperatureModifier: models.TemperatureModifierFrozen},
		},
		{
			name: "zero values still override",
			override: models.ClimateOverride{
				Temperature: models.Ptr[float32](0),
			},
			want: models.Climate{Temperature: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(testBaseline, tt.override))
		})
	}
}

// TestMerge_FullOverrideIgnoresBaseline verifies that a complete override
// yields exactly the override's values.
func TestMerge_FullOverrideIgnoresBaseline(t *testing.T) {
	override := models.ClimateOverride{
		Temperature:         models.Ptr[float32](-0.5),
		Downfall:            models.Ptr[float32](1),
		Precipitation:       models.Ptr(models.PrecipitationSnow),
		TemperatureModifier: models.Ptr(models.TemperatureModifierFrozen),
	}

	for _, baseline := range []models.Climate{testBaseline, {}, {Temperature: 1.5, Downfall: 0.3, Precipitation: models.PrecipitationRain}} {
		assert.Equal(t, models.Climate{
			Temperature:         -0.5,
			Downfall:            1,
			Precipitation:       models.PrecipitationSnow,
			TemperatureModifier: models.TemperatureModifierFrozen,
		}, Merge(baseline, override))
	}
}

// TestMerge_Idempotent verifies merge(merge(b, o), o) == merge(b, o).
func TestMerge_Idempotent(t *testing.T) {
	override := models.ClimateOverride{Temperature: models.Ptr[float32](1.2), Precipitation: models.Ptr(models.PrecipitationRain)}

	once := Merge(testBaseline, override)
	assert.Equal(t, once, Merge(once, override))
}

// TestMerge_LegacyBaselineKeepsModifier verifies that an override without a
// temperature modifier passes the baseline's modifier through.
func TestMerge_LegacyBaselineKeepsModifier(t *testing.T) {
	baseline := models.Climate{Temperature: 0, TemperatureModifier: models.TemperatureModifierFrozen}

	got := Merge(baseline, models.ClimateOverride{Temperature: models.Ptr[float32](0.2)})
	assert.Equal(t, models.TemperatureModifierFrozen, got.TemperatureModifier)
}

// TestMerge_DoesNotMutateInputs verifies that merge is side-effect-free.
func TestMerge_DoesNotMutateInputs(t *testing.T) {
	baseline := testBaseline
	temp := float32(1)
	override := models.ClimateOverride{Temperature: &temp}

	_ = Merge(baseline, override)

	assert.Equal(t, testBaseline, baseline)
	assert.Equal(t, float32(1), *override.Temperature)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

// Clamp bounds applied to override values when they are loaded.
const (
	MinTemperature float32 = -0.5
	MaxTemperature float32 = 2.0

	MinDownfall float32 = 0.0
	MaxDownfall float32 = 1.0
)

// Climate is the complete climate record of a biome. The host supplies it as
// the baseline of a query, and the merge engine returns it as the merged
// result. Every field is always present.
type Climate struct {
	// Precipitation is the kind of downfall.
	Precipitation Precipitation `json:"precipitation"`

	// Temperature drives snow coverage and foliage colour.
	Temperature float32 `json:"temperature"`

	// TemperatureModifier is FROZEN for frozen oceans. Hosts using the legacy
	// record shape always leave it at NONE.
	TemperatureModifier TemperatureModifier `json:"temperatureModifier"`

	// Downfall is the humidity of the record.
	Downfall float32 `json:"downfall"`
}

// ClimateOverride is a sparse, user-authored override for a single key.
//
// A nil field is absent: it never overrides the baseline. A non-nil field
// holding the zero value overrides the baseline with zero.
type ClimateOverride struct {
	Temperature         *float32             `json:"temperature,omitempty"`
	Downfall            *float32             `json:"downfall,omitempty"`
	Precipitation       *Precipitation       `json:"precipitation,omitempty"`
	TemperatureModifier *TemperatureModifier `json:"temperatureModifier,omitempty"`
}

// Overrides maps keys to their overrides, as held by the codec and the store.
type Overrides map[Key]ClimateOverride

// IsNoOp reports whether every field of the override is absent. Merging a
// no-op override into any baseline yields the baseline unchanged.
func (o ClimateOverride) IsNoOp() bool {
	return o.Temperature == nil &&
		o.Downfall == nil &&
		o.Precipitation == nil &&
		o.TemperatureModifier == nil
}

// Clamp returns a copy of o with temperature bounded to
// [MinTemperature, MaxTemperature] and downfall bounded to
// [MinDownfall, MaxDownfall]. NaN values are dropped (treated as absent).
// Clamp never aliases the pointers of o.
func (o ClimateOverride) Clamp() ClimateOverride {
	return ClimateOverride{
		Temperature:         clampPtr(o.Temperature, MinTemperature, MaxTemperature),
		Downfall:            clampPtr(o.Downfall, MinDownfall, MaxDownfall),
		Precipitation:       clonePtr(o.Precipitation),
		TemperatureModifier: clonePtr(o.TemperatureModifier),
	}
}

// ClampFloat bounds v to [lo, hi] as max(lo, min(hi, v)). Infinities clamp
// to the nearest bound; NaN is returned unchanged.
func ClampFloat(v, lo, hi float32) float32 {
	if math.IsNaN(float64(v)) {
		return v
	}
	return max(lo, min(hi, v))
}

func clampPtr(v *float32, lo, hi float32) *float32 {
	if v == nil || math.IsNaN(float64(*v)) {
		return nil
	}
	c := ClampFloat(*v, lo, hi)
	return &c
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Ptr returns a pointer to v. It keeps override literals short.
func Ptr[T any](v T) *T {
	return &v
}

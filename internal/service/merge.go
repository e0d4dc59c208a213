// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/climate-adjuster/models"

// Merge combines a complete baseline with a sparse override: each field takes
// the override's value when present and the baseline's value otherwise.
//
// Merge is total and performs no validation or clamping; overrides are
// clamped once when the store is built. A baseline from a host that has no
// temperature modifier keeps its modifier unless the override sets one.
func Merge(baseline models.Climate, override models.ClimateOverride) models.Climate {
	merged := baseline

	if override.Temperature != nil {
		merged.Temperature = *override.Temperature
	}
	if override.Downfall != nil {
		merged.Downfall = *override.Downfall
	}
	if override.Precipitation != nil {
		merged.Precipitation = *override.Precipitation
	}
	if override.TemperatureModifier != nil {
		merged.TemperatureModifier = *override.TemperatureModifier
	}

	return merged
}

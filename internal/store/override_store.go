// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/climate-adjuster/internal/codec"
	"github.com/MKhiriev/climate-adjuster/models"
)

// overrideStore is the in-memory [OverrideStore]. The map is written once in
// NewOverrideStore and only read afterwards, so no lock is needed.
type overrideStore struct {
	entries models.Overrides
}

// NewOverrideStore builds an [OverrideStore] from overrides. Every entry is
// clamped on the way in; the caller's map is not retained or modified.
func NewOverrideStore(overrides models.Overrides) OverrideStore {
	entries := make(models.Overrides, len(overrides))
	for key, override := range overrides {
		entries[key] = override.Clamp()
	}

	return &overrideStore{entries: entries}
}

// Lookup returns a copy of the override for key, so callers cannot reach the
// stored pointers.
func (s *overrideStore) Lookup(key models.Key) (models.ClimateOverride, bool) {
	override, ok := s.entries[key]
	if !ok {
		return models.ClimateOverride{}, false
	}
	return override.Clamp(), true
}

func (s *overrideStore) Len() int {
	return len(s.entries)
}

func (s *overrideStore) Keys() []models.Key {
	return codec.SortedKeys(s.entries)
}

func (s *overrideStore) Overrides() models.Overrides {
	out := make(models.Overrides, len(s.entries))
	for key, override := range s.entries {
		out[key] = override.Clamp()
	}
	return out
}

package store

import "github.com/MKhiriev/climate-adjuster/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/override_store_mock.go -package=mock

// OverrideStore is the read-only set of validated, clamped climate overrides
// built once at startup. Implementations must be safe for concurrent reads.
type OverrideStore interface {
	// Lookup returns the override for key and whether one exists.
	Lookup(key models.Key) (models.ClimateOverride, bool)

	// Len returns the number of stored overrides, including no-op entries.
	Len() int

	// Keys returns every stored key ordered by its string form.
	Keys() []models.Key

	// Overrides returns a copy of the stored mapping.
	Overrides() models.Overrides
}

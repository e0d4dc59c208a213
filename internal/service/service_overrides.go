package service

import (
	"context"

	"github.com/MKhiriev/climate-adjuster/internal/store"
	"github.com/MKhiriev/climate-adjuster/models"
)

type overrideService struct {
	overrides store.OverrideStore
}

func NewOverrideService(overrides store.OverrideStore) OverrideService {
	return &overrideService{overrides: overrides}
}

func (s *overrideService) Overrides(ctx context.Context) (models.Overrides, error) {
	if s.overrides == nil {
		return nil, ErrOverridesUnavailable
	}
	return s.overrides.Overrides(), nil
}

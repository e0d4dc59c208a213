package service

import (
	"context"

	"github.com/MKhiriev/climate-adjuster/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClimatePatcher is the per-query entry point called by the host. It is
// stateless and safe for concurrent use.
type ClimatePatcher interface {
	// Patch returns the merged record and true when an effective override
	// exists for key. It returns the zero record and false when the host
	// should keep its baseline.
	Patch(ctx context.Context, key models.Key, baseline models.Climate) (models.Climate, bool)
}

// OverrideService exposes the loaded overrides to the outer surfaces.
type OverrideService interface {
	// Overrides returns a copy of the loaded overrides, or
	// ErrOverridesUnavailable when loading failed at startup.
	Overrides(ctx context.Context) (models.Overrides, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

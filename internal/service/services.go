package service

import (
	"github.com/MKhiriev/climate-adjuster/internal/logger"
	"github.com/MKhiriev/climate-adjuster/internal/store"
	"github.com/MKhiriev/climate-adjuster/models"
)

type Services struct {
	ClimatePatcher  ClimatePatcher
	OverrideService OverrideService
	AppInfoService  AppInfoService
}

// NewServices wires the services over storages. A nil
// storages.OverrideStore yields a patcher that never matches and an
// override service that reports ErrOverridesUnavailable.
func NewServices(storages *store.Storages, info models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		ClimatePatcher:  NewClimatePatcher(storages.OverrideStore, logger),
		OverrideService: NewOverrideService(storages.OverrideStore),
		AppInfoService:  NewAppInfoService(info),
	}
}

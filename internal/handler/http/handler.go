package http

import (
	"time"

	"github.com/MKhiriev/climate-adjuster/internal/codec"
	"github.com/MKhiriev/climate-adjuster/internal/config"
	"github.com/MKhiriev/climate-adjuster/internal/host"
	"github.com/MKhiriev/climate-adjuster/internal/logger"
	"github.com/MKhiriev/climate-adjuster/internal/service"
	"github.com/MKhiriev/climate-adjuster/internal/validators"
)

type Handler struct {
	services  *service.Services
	bus       *host.Bus
	codec     *codec.Codec
	validator validators.Validator
	timeout   time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Patch requests are posted on bus, so
// they go through the same listeners as in-process queries.
func NewHandler(services *service.Services, bus *host.Bus, c *codec.Codec, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		bus:       bus,
		codec:     c,
		validator: validators.NewClimateValidator(),
		timeout:   cfg.RequestTimeout,
		logger:    logger,
	}
}

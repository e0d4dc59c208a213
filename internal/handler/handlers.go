package handler

import (
	"github.com/MKhiriev/climate-adjuster/internal/codec"
	"github.com/MKhiriev/climate-adjuster/internal/config"
	"github.com/MKhiriev/climate-adjuster/internal/handler/event"
	"github.com/MKhiriev/climate-adjuster/internal/handler/http"
	"github.com/MKhiriev/climate-adjuster/internal/host"
	"github.com/MKhiriev/climate-adjuster/internal/logger"
	"github.com/MKhiriev/climate-adjuster/internal/service"
)

type Handlers struct {
	HTTP  *http.Handler
	Event *event.Handler
}

// NewHandlers subscribes the climate listener to bus and, when an HTTP
// address is configured, builds the HTTP handler on top of the same bus.
func NewHandlers(services *service.Services, bus *host.Bus, c *codec.Codec, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if bus == nil {
		return nil, errNilBus
	}

	handlers := &Handlers{
		Event: event.NewHandler(services, logger),
	}
	if err := handlers.Event.Register(bus); err != nil {
		return nil, err
	}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, bus, c, cfg, logger)
	}

	return handlers, nil
}

// Package event subscribes the climate patcher to the host event bus.
package event

import (
	"context"
	"fmt"

	"github.com/MKhiriev/climate-adjuster/internal/host"
	"github.com/MKhiriev/climate-adjuster/internal/logger"
	"github.com/MKhiriev/climate-adjuster/internal/service"
)

// Handler adapts a [service.ClimatePatcher] to [host.Listener].
type Handler struct {
	patcher service.ClimatePatcher

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("event handler created")
	return &Handler{
		patcher: services.ClimatePatcher,
		logger:  logger,
	}
}

// Register subscribes the handler to bus at [host.PriorityLowest], so it
// runs after every other listener and its result is final.
func (h *Handler) Register(bus *host.Bus) error {
	if err := bus.AddListener(host.PriorityLowest, h); err != nil {
		return fmt.Errorf("error registering climate listener: %w", err)
	}
	return nil
}

// OnClimateQuery patches the query's current record. The record is left
// untouched when no effective override exists.
func (h *Handler) OnClimateQuery(ctx context.Context, query *host.ClimateQuery) {
	merged, ok := h.patcher.Patch(ctx, query.Name(), query.Climate())
	if !ok {
		return
	}
	query.SetClimate(merged)
}

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/climate-adjuster/internal/host"
	"github.com/MKhiriev/climate-adjuster/internal/logger"
	"github.com/MKhiriev/climate-adjuster/models"
)

// patchClimate answers one climate query from a remote host.
func (h *Handler) patchClimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PatchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if !h.codec.Shape().HasTemperatureModifier() {
		request.Climate.TemperatureModifier = models.TemperatureModifierNone
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.writeError(w, r, err)
		return
	}

	query := h.bus.Post(ctx, host.NewClimateQuery(request.Name, request.Climate))
	if err := ctx.Err(); err != nil {
		h.writeError(w, r, fmt.Errorf("error resolving climate for %s: %w", request.Name, err))
		return
	}
	if !query.Changed() {
		log.Debug().Str("key", request.Name.String()).Msg("host keeps its baseline")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, r, models.PatchResponse{Name: request.Name, Climate: query.Climate()}, http.StatusOK)
}

// getOverrides returns the loaded overrides in the override file format.
func (h *Handler) getOverrides(w http.ResponseWriter, r *http.Request) {
	overrides, err := h.services.OverrideService.Overrides(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	data, err := h.codec.Encode(overrides)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

package service

import (
	"context"

	"github.com/MKhiriev/climate-adjuster/internal/logger"
	"github.com/MKhiriev/climate-adjuster/internal/store"
	"github.com/MKhiriev/climate-adjuster/models"
)

// Patch outcomes reported in the "outcome" log field.
const (
	OutcomeNoConfig     = "no_config"
	OutcomeSkippedEmpty = "skipped_empty"
	OutcomePatched      = "patched"
)

type climatePatcher struct {
	overrides store.OverrideStore

	logger *logger.Logger
}

// NewClimatePatcher returns a [ClimatePatcher] reading from overrides. A nil
// store is valid and never matches, which is how a failed load disables
// patching.
func NewClimatePatcher(overrides store.OverrideStore, logger *logger.Logger) ClimatePatcher {
	return &climatePatcher{
		overrides: overrides,
		logger:    logger,
	}
}

// Patch logs through the logger attached to ctx when there is one, so trace
// lines of HTTP queries keep their trace_id.
func (p *climatePatcher) Patch(ctx context.Context, key models.Key, baseline models.Climate) (models.Climate, bool) {
	log := logger.FromContextOr(ctx, p.logger)

	if p.overrides == nil {
		log.Debug().Str("key", key.String()).Str("outcome", OutcomeNoConfig).Msg("no climate configuration for key")
		return models.Climate{}, false
	}

	override, ok := p.overrides.Lookup(key)
	if !ok {
		log.Debug().Str("key", key.String()).Str("outcome", OutcomeNoConfig).Msg("no climate configuration for key")
		return models.Climate{}, false
	}

	if override.IsNoOp() {
		log.Info().Str("key", key.String()).Str("outcome", OutcomeSkippedEmpty).Msg("skipped empty climate data")
		return models.Climate{}, false
	}

	log.Info().Str("key", key.String()).Str("outcome", OutcomePatched).Msg("patching climate data")

	return Merge(baseline, override), true
}

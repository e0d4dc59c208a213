package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills the tagged fields of cfg from the environment. Unset
// variables leave fields at their zero value, so the mergo layer keeps the
// values of earlier layers.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingEnv, err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/climate-adjuster/internal/codec"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. The first failure is returned.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ModName == "" || strings.ContainsAny(cfg.App.ModName, `/\`) {
		return fmt.Errorf("%w: mod name %q must be a single path segment", ErrInvalidAppConfigs, cfg.App.ModName)
	}

	if _, err := codec.ParseShape(cfg.App.HostShape); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Storage.ConfigRoot == "" {
		return fmt.Errorf("%w: empty config root", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.FileName == "" || strings.ContainsAny(cfg.Storage.FileName, `/\`) {
		return fmt.Errorf("%w: file name %q must be a single path segment", ErrInvalidStorageConfigs, cfg.Storage.FileName)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidServerConfigs, cfg.Server.RequestTimeout)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"

	"github.com/MKhiriev/climate-adjuster/internal/codec"
)

// StructuredConfig is the top-level configuration container for the
// climate-adjuster process. It is populated by merging built-in defaults, an
// optional JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: the mod name used for the config
	// directory, the host record shape and the log level.
	App App `envPrefix:"APP_"`

	// Storage locates the override file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings. An empty HTTPAddress selects
	// apply mode instead of serve mode.
	Server Server `envPrefix:"SERVER_"`

	// Host holds the apply-mode input and output documents.
	Host Host `envPrefix:"HOST_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// ModName names the directory under the config root that holds the
	// override file.
	// Env: APP_MOD_NAME
	ModName string `env:"MOD_NAME"`

	// HostShape selects the host record shape, "modern" or "legacy".
	// Env: APP_HOST_SHAPE
	HostShape string `env:"HOST_SHAPE"`

	// LogLevel is a zerolog level name (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage locates the override file at <ConfigRoot>/<App.ModName>/<FileName>.
type Storage struct {
	// ConfigRoot is the base configuration directory.
	// Env: STORAGE_CONFIG_ROOT
	ConfigRoot string `env:"CONFIG_ROOT"`

	// FileName is the override file name.
	// Env: STORAGE_FILE_NAME
	FileName string `env:"FILE_NAME"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Host holds the apply-mode documents. Empty or "-" means stdin for
// BaselinesPath and stdout for OutputPath.
type Host struct {
	// Env: HOST_BASELINES
	BaselinesPath string `env:"BASELINES"`

	// Env: HOST_OUTPUT
	OutputPath string `env:"OUTPUT"`
}

// OverridesPath returns the full path of the override file.
func (cfg *StructuredConfig) OverridesPath() string {
	return filepath.Join(cfg.Storage.ConfigRoot, cfg.App.ModName, cfg.Storage.FileName)
}

// Shape returns the configured host record shape. It falls back to
// [codec.ShapeModern] for values that did not pass validation.
func (cfg *StructuredConfig) Shape() codec.Shape {
	shape, err := codec.ParseShape(cfg.App.HostShape)
	if err != nil {
		return codec.ShapeModern
	}
	return shape
}

// ServeMode reports whether an HTTP address is configured.
func (cfg *StructuredConfig) ServeMode() bool {
	return cfg.Server.HTTPAddress != ""
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. Later sources override non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. JSON file (path taken from -c/-config or CONFIG)
//  3. Environment variables
//  4. Command-line flags
//
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withJSON(args).
		withEnv().
		withFlags(args).
		build()
}

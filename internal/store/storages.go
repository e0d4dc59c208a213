package store

import (
	"path/filepath"

	"github.com/MKhiriev/climate-adjuster/internal/codec"
	"github.com/MKhiriev/climate-adjuster/internal/logger"
)

// Storages groups the storage components handed to the service layer.
type Storages struct {
	// OverrideStore is nil when loading failed. Consumers must treat a nil
	// store as "no configuration for any key".
	OverrideStore OverrideStore

	// Path is the override file the store was loaded from.
	Path string
}

// NewStorages prepares the override file directory and loads the override
// store from path.
//
// It never fails: a directory creation error is logged and loading proceeds;
// a load error is logged with the file path and leaves OverrideStore nil, so
// patching is disabled for the whole run rather than partially applied.
func NewStorages(path string, c *codec.Codec, logger *logger.Logger) *Storages {
	logger.Info().Str("path", path).Msg("loading climate overrides...")

	if err := EnsureDir(filepath.Dir(path)); err != nil {
		logger.Err(err).Str("path", path).Msg("failed to create config directory")
	}

	overrides, err := LoadOverrides(path, c)
	if err != nil {
		logger.Err(err).Str("path", path).Msg("error with climate overrides config, patching is disabled")
		return &Storages{Path: path}
	}

	logger.Info().Str("path", path).Int("count", overrides.Len()).Msg("climate overrides loaded")

	return &Storages{
		OverrideStore: overrides,
		Path:          path,
	}
}

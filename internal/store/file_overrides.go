// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/climate-adjuster/internal/codec"
	"github.com/MKhiriev/climate-adjuster/models"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// LoadOverrides builds an [OverrideStore] from the override file at path.
//
// When no file exists, an empty override document is written to path first
// so that users have a file to edit, and an empty store is returned. When
// the file exists, it is read, decoded with c and clamped.
//
// Errors wrap [ErrWritingOverrides], [ErrReadingOverrides] or
// [ErrDecodingOverrides]. On error the returned store is nil.
func LoadOverrides(path string, c *codec.Codec) (OverrideStore, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := SaveOverrides(path, c, models.Overrides{}); err != nil {
			return nil, err
		}
		return NewOverrideStore(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrReadingOverrides, path, err)
	}

	overrides, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrDecodingOverrides, path, err)
	}

	return NewOverrideStore(overrides), nil
}

// SaveOverrides encodes overrides with c and writes them to path atomically.
// The parent directory must already exist.
func SaveOverrides(path string, c *codec.Codec, overrides models.Overrides) error {
	data, err := c.Encode(overrides)
	if err != nil {
		return fmt.Errorf("%w '%s': %w", ErrWritingOverrides, path, err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w '%s': %w", ErrWritingOverrides, path, err)
	}

	return nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w '%s': %w", ErrCreatingConfigDir, dir, err)
	}
	return nil
}

// writeFileAtomic writes data to a temporary file next to path, syncs it and
// renames it over path, so readers never observe a partial document.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tempFile.Name()) // no-op after a successful rename

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file '%s': %w", tempFile.Name(), err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file '%s': %w", tempFile.Name(), err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file '%s': %w", tempFile.Name(), err)
	}

	if err := os.Chmod(tempFile.Name(), filePerm); err != nil {
		return fmt.Errorf("failed to set permissions on '%s': %w", tempFile.Name(), err)
	}

	if err := os.Rename(tempFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temporary file to '%s': %w", path, err)
	}

	return nil
}

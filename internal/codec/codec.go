// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts between the persisted override document and the
// in-memory [models.Overrides] mapping.
//
// The persisted document is a JSON object mapping key strings to sparse
// override objects:
//
//	{
//	  "mymod:desert_oasis": {
//	    "temperature": 1.2,
//	    "downfall": 0.9,
//	    "precipitation": "rain",
//	    "temperatureModifier": "none"
//	  }
//	}
//
// Missing members (and members set to null) decode as absent, never as zero.
// Enumeration members are resolved case-insensitively through the name tables
// in [models]. The same package also handles the host's baseline document,
// which has the same layout but complete records.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/MKhiriev/climate-adjuster/models"
)

// jsonIndent is the indentation used for every document the codec writes.
const jsonIndent = "  "

// overrideDocument is the wire form of a single override entry. Enumerations
// stay strings here so that the codec controls their lookup and errors.
type overrideDocument struct {
	Temperature         *float32 `json:"temperature,omitempty"`
	Downfall            *float32 `json:"downfall,omitempty"`
	Precipitation       *string  `json:"precipitation,omitempty"`
	TemperatureModifier *string  `json:"temperatureModifier,omitempty"`
}

// Codec encodes and decodes override and baseline documents for one host
// record shape. A Codec is immutable and safe for concurrent use.
type Codec struct {
	shape Shape
}

// Option configures a [Codec].
type Option func(*Codec)

// WithShape selects the host record shape. The default is [ShapeModern].
func WithShape(shape Shape) Option {
	return func(c *Codec) {
		c.shape = shape
	}
}

// New constructs a [Codec].
func New(opts ...Option) *Codec {
	c := &Codec{shape: ShapeModern}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Shape returns the host record shape the codec was built for.
func (c *Codec) Shape() Shape {
	return c.shape
}

// Decode parses a persisted override document.
//
// Empty input, whitespace-only input and a JSON null document all decode to
// an empty mapping. A malformed key yields an error wrapping
// [models.ErrMalformedKey]; an unknown enumeration name yields an error
// wrapping [models.ErrUnknownEnumValue]. Two names for the same key, such as
// "desert" and "minecraft:desert", are a malformed key as well. Entries are
// processed in name order and decoding stops at the first error.
func (c *Codec) Decode(data []byte) (models.Overrides, error) {
	raw, err := decodeObject[overrideDocument](data)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	overrides := make(models.Overrides, len(raw))
	seen := make(map[models.Key]string, len(raw))
	for _, name := range names {
		key, err := models.ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingEntry, err)
		}
		if other, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %w", ErrDecodingEntry,
				&models.MalformedKeyError{Raw: name, Reason: "duplicate of " + strconv.Quote(other)})
		}
		seen[key] = name

		override, err := c.fromDocument(raw[name])
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrDecodingEntry, name, err)
		}
		overrides[key] = override
	}

	return overrides, nil
}

// Encode renders overrides as a pretty-printed JSON document with sorted
// keys and a trailing newline. A nil or empty mapping encodes as "{}".
//
// Non-finite numbers follow the load policy: NaN is written as absent and
// an infinity is written as the nearest bound of its field.
func (c *Codec) Encode(overrides models.Overrides) ([]byte, error) {
	raw := make(map[string]overrideDocument, len(overrides))
	for key, override := range overrides {
		doc, err := c.toDocument(override)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrEncodingEntry, key, err)
		}
		raw[key.String()] = doc
	}

	return encodeObject(raw)
}

// DecodeBaselines parses a document mapping keys to complete climate records,
// as supplied by a host. Members missing from a record keep their zero
// value. Under [ShapeLegacy] the temperature modifier is reset to NONE.
func (c *Codec) DecodeBaselines(data []byte) (map[models.Key]models.Climate, error) {
	raw, err := decodeObject[models.Climate](data)
	if err != nil {
		return nil, err
	}

	baselines := make(map[models.Key]models.Climate, len(raw))
	for name, climate := range raw {
		key, err := models.ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingEntry, err)
		}
		if c.shape == ShapeLegacy {
			climate.TemperatureModifier = models.TemperatureModifierNone
		}
		baselines[key] = climate
	}

	return baselines, nil
}

// EncodeBaselines renders complete records in the same layout as
// [Codec.DecodeBaselines] reads them.
func (c *Codec) EncodeBaselines(climates map[models.Key]models.Climate) ([]byte, error) {
	raw := make(map[string]models.Climate, len(climates))
	for key, climate := range climates {
		raw[key.String()] = climate
	}

	return encodeObject(raw)
}

// SortedKeys returns the keys of m ordered by their string form.
func SortedKeys[V any](m map[models.Key]V) []models.Key {
	keys := make([]models.Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}

func (c *Codec) fromDocument(doc overrideDocument) (models.ClimateOverride, error) {
	override := models.ClimateOverride{
		Temperature: doc.Temperature,
		Downfall:    doc.Downfall,
	}

	if doc.Precipitation != nil {
		p, err := models.ParsePrecipitation(*doc.Precipitation)
		if err != nil {
			return models.ClimateOverride{}, err
		}
		override.Precipitation = &p
	}

	if doc.TemperatureModifier != nil && c.shape.HasTemperatureModifier() {
		m, err := models.ParseTemperatureModifier(*doc.TemperatureModifier)
		if err != nil {
			return models.ClimateOverride{}, err
		}
		override.TemperatureModifier = &m
	}

	return override, nil
}

func (c *Codec) toDocument(override models.ClimateOverride) (overrideDocument, error) {
	doc := overrideDocument{
		Temperature: finite(override.Temperature, models.MinTemperature, models.MaxTemperature),
		Downfall:    finite(override.Downfall, models.MinDownfall, models.MaxDownfall),
	}

	if override.Precipitation != nil {
		if !override.Precipitation.Valid() {
			return overrideDocument{}, &models.UnknownEnumValueError{Enum: "precipitation", Value: fmt.Sprint(int(*override.Precipitation))}
		}
		name := override.Precipitation.String()
		doc.Precipitation = &name
	}

	if override.TemperatureModifier != nil && c.shape.HasTemperatureModifier() {
		if !override.TemperatureModifier.Valid() {
			return overrideDocument{}, &models.UnknownEnumValueError{Enum: "temperatureModifier", Value: fmt.Sprint(int(*override.TemperatureModifier))}
		}
		name := override.TemperatureModifier.String()
		doc.TemperatureModifier = &name
	}

	return doc, nil
}

// finite returns v unchanged when it is a finite number, nil for NaN and the
// matching bound for an infinity. JSON has no encoding for either.
func finite(v *float32, lo, hi float32) *float32 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	switch {
	case math.IsNaN(f):
		return nil
	case math.IsInf(f, 0):
		bound := models.ClampFloat(*v, lo, hi)
		return &bound
	}
	return v
}

// decodeObject decodes a top-level JSON object into a map of T, treating
// empty input and null as an empty object.
func decodeObject[T any](data []byte) (map[string]T, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]T{}, nil
	}

	var raw map[string]T
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if raw == nil {
		raw = map[string]T{}
	}

	return raw, nil
}

func encodeObject[T any](raw map[string]T) ([]byte, error) {
	data, err := json.MarshalIndent(raw, "", jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return append(data, '\n'), nil
}

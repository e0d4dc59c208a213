package models

import (
	"strconv"
	"strings"
)

// enumTable is a bidirectional name table for a small integer enumeration.
// Index i of names is the canonical (lowercase) name of value i.
type enumTable[T ~int] struct {
	kind  string
	names []string
}

// name returns the canonical name of v, or an empty string when v is out of
// range.
func (t enumTable[T]) name(v T) string {
	if int(v) < 0 || int(v) >= len(t.names) {
		return ""
	}
	return t.names[v]
}

// parse resolves s case-insensitively against the table.
func (t enumTable[T]) parse(s string) (T, error) {
	for i, n := range t.names {
		if strings.EqualFold(n, s) {
			return T(i), nil
		}
	}
	return 0, &UnknownEnumValueError{Enum: t.kind, Value: s}
}

// valid reports whether v has a name in the table.
func (t enumTable[T]) valid(v T) bool {
	return t.name(v) != ""
}

// Precipitation is the kind of downfall a record produces.
type Precipitation int

const (
	PrecipitationNone Precipitation = iota
	PrecipitationRain
	PrecipitationSnow
)

var precipitationTable = enumTable[Precipitation]{
	kind:  "precipitation",
	names: []string{"none", "rain", "snow"},
}

// ParsePrecipitation resolves a precipitation name ("none", "rain", "snow")
// case-insensitively. Returns a *[UnknownEnumValueError] on no match.
func ParsePrecipitation(s string) (Precipitation, error) {
	return precipitationTable.parse(s)
}

// String returns the canonical lowercase name.
func (p Precipitation) String() string {
	return precipitationTable.name(p)
}

// Valid reports whether p is one of the declared constants.
func (p Precipitation) Valid() bool {
	return precipitationTable.valid(p)
}

// MarshalText implements [encoding.TextMarshaler].
func (p Precipitation) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &UnknownEnumValueError{Enum: precipitationTable.kind, Value: strconv.Itoa(int(p))}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Precipitation) UnmarshalText(text []byte) error {
	v, err := ParsePrecipitation(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// TemperatureModifier adjusts how temperature is sampled across a record.
// Only the newer host shape carries it.
type TemperatureModifier int

const (
	TemperatureModifierNone TemperatureModifier = iota
	TemperatureModifierFrozen
)

var temperatureModifierTable = enumTable[TemperatureModifier]{
	kind:  "temperatureModifier",
	names: []string{"none", "frozen"},
}

// ParseTemperatureModifier resolves a modifier name ("none", "frozen")
// case-insensitively. Returns a *[UnknownEnumValueError] on no match.
func ParseTemperatureModifier(s string) (TemperatureModifier, error) {
	return temperatureModifierTable.parse(s)
}

// String returns the canonical lowercase name.
func (m TemperatureModifier) String() string {
	return temperatureModifierTable.name(m)
}

// Valid reports whether m is one of the declared constants.
func (m TemperatureModifier) Valid() bool {
	return temperatureModifierTable.valid(m)
}

// MarshalText implements [encoding.TextMarshaler].
func (m TemperatureModifier) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &UnknownEnumValueError{Enum: temperatureModifierTable.kind, Value: strconv.Itoa(int(m))}
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *TemperatureModifier) UnmarshalText(text []byte) error {
	v, err := ParseTemperatureModifier(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// DefaultNamespace is the namespace assumed for a key written as a bare path.
const DefaultNamespace = "minecraft"

// namespaceSeparator splits a key string into namespace and path.
const namespaceSeparator = ":"

// Key identifies an environmental record (a biome) by namespace and path.
//
// Key is a comparable value type and is used directly as a map key by the
// codec, the override store and the patch hook.
type Key struct {
	// Namespace is the owner of the record, e.g. "minecraft" or a mod id.
	Namespace string

	// Path is the record name inside the namespace, e.g. "desert".
	Path string
}

// NewKey builds a Key from an explicit namespace and path, validating both
// segments. An empty namespace is replaced with [DefaultNamespace].
func NewKey(namespace, path string) (Key, error) {
	raw := namespace + namespaceSeparator + path
	if namespace == "" {
		namespace = DefaultNamespace
		raw = path
	}
	if reason := checkSegment(namespace); reason != "" {
		return Key{}, &MalformedKeyError{Raw: raw, Reason: "namespace " + reason}
	}
	if reason := checkSegment(path); reason != "" {
		return Key{}, &MalformedKeyError{Raw: raw, Reason: "path " + reason}
	}

	return Key{Namespace: namespace, Path: path}, nil
}

// ParseKey parses a key string of the form "namespace:path" or "path".
//
// Each segment must be non-empty and consist only of lowercase letters,
// digits and the characters '_', '.', '/', '-'. A bare path implies
// [DefaultNamespace]. Returns a *[MalformedKeyError] otherwise.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, namespaceSeparator)
	switch len(parts) {
	case 1:
		if reason := checkSegment(parts[0]); reason != "" {
			return Key{}, &MalformedKeyError{Raw: s, Reason: "path " + reason}
		}
		return Key{Namespace: DefaultNamespace, Path: parts[0]}, nil
	case 2:
		if reason := checkSegment(parts[0]); reason != "" {
			return Key{}, &MalformedKeyError{Raw: s, Reason: "namespace " + reason}
		}
		if reason := checkSegment(parts[1]); reason != "" {
			return Key{}, &MalformedKeyError{Raw: s, Reason: "path " + reason}
		}
		return Key{Namespace: parts[0], Path: parts[1]}, nil
	default:
		return Key{}, &MalformedKeyError{Raw: s, Reason: "more than one namespace separator"}
	}
}

// MustParseKey is like [ParseKey] but panics on malformed input.
// It is intended for constants and tests.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// String renders the key in its canonical "namespace:path" form.
func (k Key) String() string {
	return k.Namespace + namespaceSeparator + k.Path
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k.Namespace == "" && k.Path == ""
}

// MarshalText implements [encoding.TextMarshaler].
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// checkSegment returns an empty string when s is a valid key segment and a
// short reason otherwise.
func checkSegment(s string) string {
	if s == "" {
		return "is empty"
	}
	for _, r := range s {
		if !isSegmentRune(r) {
			return "contains invalid character " + strconv.QuoteRune(r)
		}
	}
	return ""
}

func isSegmentRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_', r == '.', r == '/', r == '-':
		return true
	}
	return false
}

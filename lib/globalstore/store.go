// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package globalstore

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/xenthuresta/installer/lib/codec"
)

// Store is the shared key-value store. The zero value is an empty store
// ready for use.
type Store struct {
	values map[string]any
}

// New returns an empty store.
func New() *Store {
	return &Store{values: make(map[string]any)}
}

// Insert sets key to value, replacing any previous value.
func (s *Store) Insert(key string, value any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[key] = value
}

// Value returns the value stored under key.
func (s *Store) Value(key string) (any, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Contains reports whether key is set.
func (s *Store) Contains(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Remove deletes key and reports whether it was set.
func (s *Store) Remove(key string) bool {
	_, ok := s.values[key]
	delete(s.values, key)
	return ok
}

// Keys returns the keys in sorted order.
func (s *Store) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Len returns the number of keys.
func (s *Store) Len() int { return len(s.values) }

// Snapshot returns a shallow copy of the contents.
func (s *Store) Snapshot() map[string]any {
	return maps.Clone(s.values)
}

// StringMap returns the value under key as a map of strings. It accepts
// both map[string]string (as inserted natively) and map[string]any with
// string values (as produced by the snapshot loaders).
func (s *Store) StringMap(key string) (map[string]string, bool) {
	switch value := s.values[key].(type) {
	case map[string]string:
		return maps.Clone(value), true
	case map[string]any:
		result := make(map[string]string, len(value))
		for entryKey, entryValue := range value {
			text, ok := entryValue.(string)
			if !ok {
				return nil, false
			}
			result[entryKey] = text
		}
		return result, true
	default:
		return nil, false
	}
}

func (s *Store) merge(values map[string]any) {
	for key, value := range values {
		s.Insert(key, value)
	}
}

// MarshalJSON encodes the store contents as a JSON object.
func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.contents())
}

// MarshalYAML encodes the store contents as a YAML mapping.
func (s *Store) MarshalYAML() (any, error) {
	return s.contents(), nil
}

func (s *Store) contents() map[string]any {
	if s.values == nil {
		return map[string]any{}
	}
	return s.values
}

// Format names a store encoding.
type Format string

const (
	// FormatJSON is indented JSON. Loading also accepts JSONC.
	FormatJSON Format = "json"
	// FormatYAML is a YAML mapping.
	FormatYAML Format = "yaml"
	// FormatSnapshot is zstd-compressed deterministic CBOR.
	FormatSnapshot Format = "cbor"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch format := Format(name); format {
	case FormatJSON, FormatYAML, FormatSnapshot:
		return format, nil
	default:
		return "", fmt.Errorf("unknown global store format %q (want json, yaml, or cbor)", name)
	}
}

// Encode returns the contents in format.
func (s *Store) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(s.contents(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding global store as JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(s.contents())
		if err != nil {
			return nil, fmt.Errorf("encoding global store as YAML: %w", err)
		}
		return data, nil
	case FormatSnapshot:
		data, err := codec.MarshalCompressed(s.contents())
		if err != nil {
			return nil, fmt.Errorf("encoding global store snapshot: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown global store format %q", format)
	}
}

// Save writes the contents to path in format.
func (s *Store) Save(path string, format Format) error {
	data, err := s.Encode(format)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// SaveJSON writes the contents to path as indented JSON.
func (s *Store) SaveJSON(path string) error {
	return s.Save(path, FormatJSON)
}

// LoadJSON merges the JSON (or JSONC) object in path into the store.
func (s *Store) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var values map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &values); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	s.merge(values)
	return nil
}

// SaveYAML writes the contents to path as YAML.
func (s *Store) SaveYAML(path string) error {
	return s.Save(path, FormatYAML)
}

// LoadYAML merges the YAML mapping in path into the store.
func (s *Store) LoadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	s.merge(values)
	return nil
}

// SaveSnapshot writes the contents to path as zstd-compressed
// deterministic CBOR.
func (s *Store) SaveSnapshot(path string) error {
	return s.Save(path, FormatSnapshot)
}

// LoadSnapshot merges a snapshot written by SaveSnapshot into the store.
func (s *Store) LoadSnapshot(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var values map[string]any
	if err := codec.UnmarshalCompressed(data, &values); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	s.merge(values)
	return nil
}

// writeFile writes data to path through a temporary file in the same
// directory, so readers never see a partial snapshot.
func writeFile(path string, data []byte) error {
	temporary, err := os.CreateTemp(filepath.Dir(path), ".globalstore-*")
	if err != nil {
		return err
	}
	temporaryPath := temporary.Name()
	if _, err := temporary.Write(data); err != nil {
		temporary.Close()
		os.Remove(temporaryPath)
		return err
	}
	if err := temporary.Close(); err != nil {
		os.Remove(temporaryPath)
		return err
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return err
	}
	return nil
}

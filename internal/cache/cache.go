// Package cache is a file-backed store of raw API responses, one
// pretty-printed JSON document per key. Presence of a file alone decides
// whether a fetch is skipped; there is no TTL and no eviction. An operator
// deletes files to force a refresh.
package cache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store reads and writes cache entries under a single directory.
// Concurrent writers to distinct keys are safe (atomic rename); the
// pipeline itself is a single-writer batch process.
type Store struct {
	dir string
}

// NewStore creates the cache directory if needed and returns a Store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the cache directory path.
func (s *Store) Dir() string { return s.dir }

// Has reports whether an entry exists for the key.
func (s *Store) Has(key Key) bool {
	info, err := os.Stat(s.path(key))
	return err == nil && !info.IsDir()
}

// Read returns the raw bytes of a cache entry.
func (s *Store) Read(key Key) ([]byte, error) {
	return os.ReadFile(s.path(key))
}

// ReadJSON decodes a cache entry into v.
func (s *Store) ReadJSON(key Key, v any) error {
	data, err := s.Read(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key.Filename(), err)
	}
	return nil
}

// Write persists raw JSON under the key, pretty-printed, via a temp file
// and rename so a crashed run never leaves a truncated entry behind.
func (s *Store) Write(key Key, data []byte) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return fmt.Errorf("cache %s: not valid JSON: %w", key.Filename(), err)
	}

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, pretty.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// List enumerates cached keys of one kind and sub, sorted by ID to keep
// ingestion order stable across runs. Only per-entity keys (non-empty ID)
// are returned; singleton listings are read directly by their known key.
func (s *Store) List(kind, sub string) ([]Key, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list cache: %w", err)
	}

	var keys []Key
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), ".tmp") {
			continue
		}
		key, ok := ParseFilename(e.Name())
		if ok && key.Kind == kind && key.Sub == sub && key.ID != "" {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].ID < keys[j].ID })
	return keys, nil
}

func (s *Store) path(key Key) string {
	return filepath.Join(s.dir, key.Filename())
}

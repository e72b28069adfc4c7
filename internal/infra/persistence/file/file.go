// Package file provides a Storage implementation backed by a single JSON
// file, the closest analogue to browser local storage for a CLI client.
package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// Store persists keys to a JSON file. The full map is rewritten on every
// mutation through a temp-file rename, so a crash never leaves a torn
// file behind. Concurrent processes are not coordinated; last write wins,
// matching the consumed contract.
type Store struct {
	mu     sync.Mutex
	path   string
	loaded bool
	values map[string]string
}

// NewStore creates a file-backed store at path. The file is created lazily
// on the first write.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		values: make(map[string]string),
	}
}

var _ service.Storage = (*Store)(nil)

func (s *Store) Load(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return "", false, err
	}

	value, ok := s.values[key]

	return value, ok, nil
}

func (s *Store) Save(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}

	s.values[key] = value

	return s.flush()
}

func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)

	return s.flush()
}

// ensureLoaded reads the backing file once. A missing file is an empty store.
func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.loaded = true

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read storage file")
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.values); err != nil {
			return errors.Wrap(err, "failed to parse storage file")
		}
	}
	s.loaded = true

	return nil
}

// flush writes the whole map atomically via rename.
func (s *Store) flush() error {
	encoded, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode storage file")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create storage directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp storage file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return errors.Wrap(err, "failed to write temp storage file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return errors.Wrap(err, "failed to close temp storage file")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)

		return errors.Wrap(err, "failed to replace storage file")
	}

	return nil
}

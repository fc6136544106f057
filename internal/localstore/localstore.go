// Package localstore is the storage medium for the whole application: a
// directory of JSON documents, one file per key. Reads and writes are
// synchronous; a write replaces the entire value for its key. Repositories are
// the sole writers of their keys and serialize their own read-modify-write
// cycles, so the store itself only guarantees that a single Put is atomic.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"volunteerhub/pkg/types"
)

// Well-known storage keys. Each is owned by exactly one repository.
const (
	KeyOpportunities    = "opportunities"
	KeySubmissions      = "volunteerSubmissions"
	KeyPreferences      = "volunteerPreferences"
	KeyNotifications    = "notifications"
	KeyUser             = "user"
	KeyUserType         = "userType"
	KeyOrganizationData = "organizationData"
)

// Keys lists every well-known key, in display order for the dump command.
var Keys = []string{
	KeyOpportunities,
	KeySubmissions,
	KeyPreferences,
	KeyNotifications,
	KeyUser,
	KeyUserType,
	KeyOrganizationData,
}

type Store struct {
	dir string

	mu        sync.RWMutex
	listeners map[int]func(key string)
	nextID    int
}

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}

	return &Store{
		dir:       dir,
		listeners: make(map[int]func(key string)),
	}, nil
}

// Get decodes the value stored under key into v. Returns ErrKeyNotFound when
// the key has never been written, and ErrCorruptData when the stored value
// fails to parse; the corrupt file is left in place either way.
func (s *Store) Get(key string, v any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.ErrKeyNotFound
		}
		return fmt.Errorf("failed to read key %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode key %s: %w: %v", key, types.ErrCorruptData, err)
	}

	return nil
}

// Put replaces the value stored under key and notifies change listeners. The
// write goes through a temp file and rename so a crash never leaves a
// half-written document behind.
func (s *Store) Put(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode key %s: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to replace key %s: %w", key, err)
	}

	s.notify(key)

	return nil
}

// Delete removes the key. Missing keys are a no-op.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	s.notify(key)

	return nil
}

// Reset discards a corrupt value after the caller has acknowledged the loss.
// It is the only sanctioned way to clear a key that fails to parse.
func (s *Store) Reset(key string) error {
	return s.Delete(key)
}

// Raw returns the stored bytes without decoding, for diagnostics.
func (s *Store) Raw(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, types.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, nil
}

// Subscribe registers a listener invoked after every Put or Delete, the local
// analogue of the browser storage event. The returned func cancels it.
func (s *Store) Subscribe(fn func(key string)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify(key string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fn := range s.listeners {
		fn(key)
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

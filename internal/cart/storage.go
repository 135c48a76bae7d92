package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Storage is durable key-value string storage for serialized carts. It is
// read once when a cart is constructed and written on every mutation.
type Storage interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
	Delete(key string) error
}

// MemoryStorage is an in-memory Storage, used in tests and as a fallback
// when no durable path is configured.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStorage) Set(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// FileStorage persists all keys as a single JSON object in one file, so
// carts survive process restarts the way a browser's local storage survives
// page reloads. Writes go through on every Set.
type FileStorage struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStorage loads the file at path if it exists. An unreadable or
// unparsable file starts empty rather than failing.
func NewFileStorage(path string) *FileStorage {
	s := &FileStorage{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		s.values = make(map[string]string)
	}
	return s
}

func (s *FileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	return v, ok
}

func (s *FileStorage) Set(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.flush()
}

func (s *FileStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return s.flush()
}

func (s *FileStorage) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to marshal cart storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart storage file: %w", err)
	}
	return nil
}

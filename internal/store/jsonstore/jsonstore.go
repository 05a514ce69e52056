package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSON-backed storage. One file holds every slot as a string value,
// the same shape a browser's localStorage has. Human-readable, portable.

const dataFileName = "notepad.json"

type Store struct {
	mu   sync.Mutex
	path string
}

// New returns a store rooted at dir. The directory is created lazily on the first Save.
func New(dir string) *Store {
	return &Store{path: filepath.Join(dir, dataFileName)}
}

// Path is the backing file.
func (s *Store) Path() string { return s.path }

func (s *Store) Load(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := slots[key]
	return v, ok, nil
}

func (s *Store) Save(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.read()
	if err != nil {
		return err
	}
	slots[key] = value

	b, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	return writeFileAtomic(s.path, b, 0o644)
}

func (s *Store) Close() error { return nil }

func (s *Store) read() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	slots := map[string]string{}
	if len(b) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(b, &slots); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return slots, nil
}

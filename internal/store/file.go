package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one CSV file per key under a data directory.
type FileStore struct {
	dir string
}

// NewFileStore ensures the data directory exists and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".csv")
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	return s.write(key, value)
}

// Apply writes each key via temp file and rename. The rename makes each
// individual file update atomic; a crash between two renames can still
// leave the pair one write apart, which the postgres and redis backends
// close completely.
func (s *FileStore) Apply(_ context.Context, entries map[string]string) error {
	for key, value := range entries {
		if err := s.write(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileStore) write(key, value string) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	name := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(name, s.path(key)); err != nil {
		os.Remove(name)
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

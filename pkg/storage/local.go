package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps objects on the local filesystem. Only for development: the
// speech backend cannot read file:// URIs.
type LocalStore struct {
	path string
}

func NewLocalStore(path string) (*LocalStore, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewLocalStore: failed to make path '%s' absolute: %w", path, err)
	}
	if err := os.MkdirAll(abs, 0700); err != nil {
		return nil, fmt.Errorf("storage.NewLocalStore: failed create path '%s': %w", abs, err)
	}
	return &LocalStore{path: abs}, nil
}

func (s *LocalStore) pathForKey(key string) (string, error) {
	full := filepath.Join(s.path, strings.TrimPrefix(key, "/"))
	if !strings.HasPrefix(full, s.path+string(filepath.Separator)) {
		return "", fmt.Errorf("storage.Local: invalid key %q", key)
	}
	return full, nil
}

func (s *LocalStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	full, err := s.pathForKey(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0700); err != nil {
		return "", err
	}
	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return "", err
	}
	if err := f.Sync(); err != nil {
		os.Remove(full)
		return "", err
	}
	return "file://" + full, nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	full, err := s.pathForKey(key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

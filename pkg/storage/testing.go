package storage

import (
	"context"
	"io"
	"sync"
)

// TestStore is an in-memory ObjectStore that counts calls. Errors set on it
// are returned by the matching method.
type TestStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	puts      int
	deletes   []string
	PutErr    error
	DeleteErr error
}

func NewTestStore() *TestStore {
	return &TestStore{objects: make(map[string][]byte)}
}

func (s *TestStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	if s.PutErr != nil {
		return "", s.PutErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.objects[key] = data
	return "mem://" + key, nil
}

func (s *TestStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, key)
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.objects, key)
	return nil
}

func (s *TestStore) Puts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}

// Deletes returns the keys passed to Delete, in call order.
func (s *TestStore) Deletes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deletes...)
}

func (s *TestStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

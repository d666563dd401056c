// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

// fileStore keeps every record in memory and, unless it is in-memory only,
// mirrors them to a single JSON document after each write.
type fileStore struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	records map[string]string
	closed  bool
}

type filePersistedState struct {
	Records map[string]string `json:"records"`
}

// NewFileStore opens (or prepares) the JSON document at path. An empty path
// or ":memory:" yields a store that never touches the disk.
func NewFileStore(path string) (Store, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &fileStore{
		path:     path,
		inMemory: path == ":memory:" || path == "memory",
		records:  make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewMemoryStore returns an empty store that lives only as long as the
// process.
func NewMemoryStore() Store {
	return &fileStore{path: ":memory:", inMemory: true, records: make(map[string]string)}
}

func (s *fileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", ErrStoreClosed
	}
	value, ok := s.records[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return value, nil
}

func (s *fileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	prev, had := s.records[key]
	s.records[key] = value
	if err := s.persist(); err != nil {
		if had {
			s.records[key] = prev
		} else {
			delete(s.records, key)
		}
		return err
	}
	return nil
}

func (s *fileStore) Create(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	if _, ok := s.records[key]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, key)
	}
	s.records[key] = value
	if err := s.persist(); err != nil {
		delete(s.records, key)
		return err
	}
	return nil
}

func (s *fileStore) Export(_ context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	return maps.Clone(s.records), nil
}

func (s *fileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *fileStore) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode local storage file: %w", ErrMalformedRecord, err)
	}
	if st.Records != nil {
		s.records = st.Records
	}

	return nil
}

// persist writes the whole document to a temporary file and renames it over
// the previous one. Callers hold s.mu.
func (s *fileStore) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create local storage dir: %w", err)
	}

	payload, err := json.MarshalIndent(filePersistedState{Records: s.records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod local storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close local storage file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace local storage file: %w", err)
	}

	return nil
}

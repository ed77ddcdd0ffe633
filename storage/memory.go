package storage

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// MemStore is an in-memory Store for tests and dependency injection.
// It applies the same content trimming as FileStore but keeps nothing
// on disk.
type MemStore struct {
	defaultPrompt string
	hasDefault    bool
	prompts       map[string]memEntry
}

type memEntry struct {
	content    string
	createdAt  time.Time
	modifiedAt time.Time
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{prompts: make(map[string]memEntry)}
}

// LoadDefault returns the default prompt, or ErrNotFound if unset.
func (s *MemStore) LoadDefault() (string, error) {
	if !s.hasDefault {
		return "", fmt.Errorf("default prompt: %w", ErrNotFound)
	}
	return s.defaultPrompt, nil
}

// SaveDefault replaces the default prompt.
func (s *MemStore) SaveDefault(content string) error {
	s.defaultPrompt = strings.TrimSpace(content)
	s.hasDefault = true
	return nil
}

// Load returns a named prompt.
func (s *MemStore) Load(name string) (string, error) {
	e, ok := s.prompts[name]
	if !ok {
		return "", fmt.Errorf("prompt %q: %w", name, ErrNotFound)
	}
	return e.content, nil
}

// Save stores a named prompt.
func (s *MemStore) Save(name, content string) error {
	now := time.Now()
	created := now
	if prev, ok := s.prompts[name]; ok {
		created = prev.createdAt
	}
	s.prompts[name] = memEntry{
		content:    strings.TrimSpace(content),
		createdAt:  created,
		modifiedAt: now,
	}
	return nil
}

// Delete removes a named prompt.
func (s *MemStore) Delete(name string) error {
	if _, ok := s.prompts[name]; !ok {
		return fmt.Errorf("prompt %q: %w", name, ErrNotFound)
	}
	delete(s.prompts, name)
	return nil
}

// List returns the stored prompt names, sorted.
func (s *MemStore) List() ([]string, error) {
	names := make([]string, 0, len(s.prompts))
	for name := range s.prompts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether a named prompt is stored.
func (s *MemStore) Exists(name string) bool {
	_, ok := s.prompts[name]
	return ok
}

// Info returns metadata for a named prompt.
func (s *MemStore) Info(name string) (Info, error) {
	e, ok := s.prompts[name]
	if !ok {
		return Info{}, fmt.Errorf("prompt %q: %w", name, ErrNotFound)
	}
	return Info{
		Name:       name,
		Size:       int64(len(e.content)),
		CreatedAt:  e.createdAt,
		ModifiedAt: e.modifiedAt,
	}, nil
}

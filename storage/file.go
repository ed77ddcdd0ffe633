package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	defaultFileName  = "default.txt"
	metadataFileName = "metadata.json"
	promptsDirName   = "prompts"
	promptExt        = ".txt"
	metadataVersion  = "1.0"
)

// FileStore stores prompts as text files with a JSON metadata sidecar.
type FileStore struct {
	baseDir      string
	promptsDir   string
	defaultFile  string
	metadataFile string
	logger       *slog.Logger
}

// metadata is the on-disk index of named prompts.
type metadata struct {
	Version string           `json:"version"`
	Prompts map[string]entry `json:"prompts"`
}

type entry struct {
	Name       string    `json:"name"`
	FileName   string    `json:"file_name"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	Size       int64     `json:"size"`
}

// NewFileStore creates a file store in the platform config directory.
func NewFileStore() (*FileStore, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, &Error{Op: "resolve config dir", Err: err}
	}
	return NewFileStoreAt(filepath.Join(configDir, "promptkit"))
}

// NewFileStoreAt creates a file store rooted at dir, creating the
// directory layout if needed.
func NewFileStoreAt(dir string) (*FileStore, error) {
	s := &FileStore{
		baseDir:      dir,
		promptsDir:   filepath.Join(dir, promptsDirName),
		defaultFile:  filepath.Join(dir, defaultFileName),
		metadataFile: filepath.Join(dir, metadataFileName),
		logger:       slog.Default(),
	}
	if err := os.MkdirAll(s.promptsDir, 0o755); err != nil {
		return nil, &Error{Op: "create prompts dir", Path: s.promptsDir, Err: err}
	}
	return s, nil
}

// SetLogger replaces the store's logger. A nil logger restores the default.
func (s *FileStore) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	s.logger = logger
}

// BaseDir returns the store's root directory.
func (s *FileStore) BaseDir() string {
	return s.baseDir
}

// LoadDefault reads the default prompt file.
func (s *FileStore) LoadDefault() (string, error) {
	data, err := os.ReadFile(s.defaultFile)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("default prompt: %w", ErrNotFound)
	}
	if err != nil {
		return "", &Error{Op: "load default", Path: s.defaultFile, Err: err}
	}
	s.logger.Debug("loaded default prompt", "path", s.defaultFile)
	return strings.TrimSpace(string(data)), nil
}

// SaveDefault writes the default prompt file.
func (s *FileStore) SaveDefault(content string) error {
	if err := os.WriteFile(s.defaultFile, []byte(strings.TrimSpace(content)), 0o644); err != nil {
		return &Error{Op: "save default", Path: s.defaultFile, Err: err}
	}
	s.logger.Info("saved default prompt", "path", s.defaultFile)
	return nil
}

// Load reads a named prompt.
func (s *FileStore) Load(name string) (string, error) {
	path := s.promptPath(name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("prompt %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", &Error{Op: "load", Path: path, Err: err}
	}
	s.logger.Debug("loaded prompt", "name", name, "path", path)
	return strings.TrimSpace(string(data)), nil
}

// Save writes a named prompt and updates the metadata sidecar.
func (s *FileStore) Save(name, content string) error {
	path := s.promptPath(name)
	if err := os.WriteFile(path, []byte(strings.TrimSpace(content)), 0o644); err != nil {
		return &Error{Op: "save", Path: path, Err: err}
	}
	if err := s.updateEntry(name, path); err != nil {
		return err
	}
	s.logger.Info("saved prompt", "name", name, "path", path)
	return nil
}

// Delete removes a named prompt and its metadata entry.
func (s *FileStore) Delete(name string) error {
	path := s.promptPath(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("prompt %q: %w", name, ErrNotFound)
	}
	if err := os.Remove(path); err != nil {
		return &Error{Op: "delete", Path: path, Err: err}
	}
	if err := s.removeEntry(name); err != nil {
		return err
	}
	s.logger.Info("deleted prompt", "name", name)
	return nil
}

// List returns the stored prompt names, sorted.
func (s *FileStore) List() ([]string, error) {
	meta, err := s.loadMetadata()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(meta.Prompts))
	for name := range meta.Prompts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether a named prompt file is present.
func (s *FileStore) Exists(name string) bool {
	_, err := os.Stat(s.promptPath(name))
	return err == nil
}

// Info returns metadata for a named prompt.
func (s *FileStore) Info(name string) (Info, error) {
	meta, err := s.loadMetadata()
	if err != nil {
		return Info{}, err
	}
	e, ok := meta.Prompts[name]
	if !ok {
		return Info{}, fmt.Errorf("prompt %q: %w", name, ErrNotFound)
	}
	return Info{
		Name:       e.Name,
		Size:       e.Size,
		CreatedAt:  e.CreatedAt,
		ModifiedAt: e.ModifiedAt,
		Path:       s.promptPath(name),
	}, nil
}

// promptPath returns the file path for a named prompt.
func (s *FileStore) promptPath(name string) string {
	return filepath.Join(s.promptsDir, sanitizeName(name)+promptExt)
}

// sanitizeName maps a prompt name to a safe filename. Characters outside
// [A-Za-z0-9_-] become underscores.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}

func (s *FileStore) loadMetadata() (metadata, error) {
	meta := metadata{Version: metadataVersion, Prompts: make(map[string]entry)}

	data, err := os.ReadFile(s.metadataFile)
	if os.IsNotExist(err) {
		return meta, nil
	}
	if err != nil {
		return meta, &Error{Op: "load metadata", Path: s.metadataFile, Err: err}
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, &Error{Op: "parse metadata", Path: s.metadataFile, Err: err}
	}
	if meta.Prompts == nil {
		meta.Prompts = make(map[string]entry)
	}
	return meta, nil
}

func (s *FileStore) saveMetadata(meta metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return &Error{Op: "encode metadata", Path: s.metadataFile, Err: err}
	}
	if err := os.WriteFile(s.metadataFile, data, 0o644); err != nil {
		return &Error{Op: "save metadata", Path: s.metadataFile, Err: err}
	}
	return nil
}

// updateEntry records a saved prompt in the sidecar, preserving the
// original creation time on resave.
func (s *FileStore) updateEntry(name, path string) error {
	meta, err := s.loadMetadata()
	if err != nil {
		return err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return &Error{Op: "stat", Path: path, Err: err}
	}

	created := fi.ModTime()
	if prev, ok := meta.Prompts[name]; ok && !prev.CreatedAt.IsZero() {
		created = prev.CreatedAt
	}

	meta.Prompts[name] = entry{
		Name:       name,
		FileName:   filepath.Base(path),
		CreatedAt:  created,
		ModifiedAt: fi.ModTime(),
		Size:       fi.Size(),
	}
	return s.saveMetadata(meta)
}

func (s *FileStore) removeEntry(name string) error {
	meta, err := s.loadMetadata()
	if err != nil {
		return err
	}
	delete(meta.Prompts, name)
	return s.saveMetadata(meta)
}

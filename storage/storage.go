package storage

import (
	"errors"
	"time"
)

// ErrNotFound indicates the named prompt does not exist.
var ErrNotFound = errors.New("prompt not found")

// Store is the persistence boundary for prompts. Implementations map a
// prompt name to text content; they do not interpret the content.
type Store interface {
	// LoadDefault returns the default prompt, or ErrNotFound if none
	// has been saved.
	LoadDefault() (string, error)

	// SaveDefault replaces the default prompt.
	SaveDefault(content string) error

	// Load returns a named prompt, or ErrNotFound.
	Load(name string) (string, error)

	// Save writes a named prompt, replacing any previous content.
	Save(name, content string) error

	// Delete removes a named prompt, or returns ErrNotFound.
	Delete(name string) error

	// List returns the names of all stored prompts.
	List() ([]string, error)

	// Exists reports whether a named prompt is stored. It never fails.
	Exists(name string) bool

	// Info returns metadata for a named prompt, or ErrNotFound.
	Info(name string) (Info, error)
}

// Info describes a stored prompt.
type Info struct {
	Name       string
	Size       int64
	CreatedAt  time.Time
	ModifiedAt time.Time
	Path       string // Empty for non-file stores
}

// Error wraps a filesystem failure with the operation and path involved.
type Error struct {
	Op   string // Operation that failed, e.g. "save", "delete"
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

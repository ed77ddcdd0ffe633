package promptkit

import (
	"errors"

	"github.com/randalmurphal/promptkit/storage"
)

var (
	// ErrPromptNotFound indicates a lookup, delete, or info request on a
	// prompt name that does not exist.
	ErrPromptNotFound = storage.ErrNotFound

	// ErrInvalidPrompt indicates prompt content that is empty, exceeds
	// the configured maximum length, or fails eager template validation.
	ErrInvalidPrompt = errors.New("invalid prompt")
)

// StorageError is the filesystem failure type returned by the file-backed
// store. Template syntax failures are reported as *template.Error.
type StorageError = storage.Error

package promptkit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/promptkit/storage"
	"github.com/randalmurphal/promptkit/template"
)

// factoryDefaultPrompt is the built-in default returned when no default
// prompt has been saved.
const factoryDefaultPrompt = `You are a helpful assistant.

When helping with code:
- Provide clear, concise explanations
- Follow the conventions of the language and project at hand
- Consider security and performance implications
- Point out trade-offs when they matter

When helping with general tasks:
- Be direct and actionable
- Ask clarifying questions when needed
- Break complex tasks into steps
- Acknowledge limitations or uncertainties`

// Manager composes a prompt store with the template engine behind the
// documented prompt operations. Methods are synchronous and read storage
// fresh on every call; no state is cached between calls.
type Manager struct {
	store  storage.Store
	engine *template.Engine
	config Config
}

// New creates a manager with the default configuration, storing prompts
// in the platform config directory.
func New() (*Manager, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a manager with a custom configuration.
func NewWithConfig(cfg Config) (*Manager, error) {
	var store storage.Store
	var err error
	if cfg.StorageDir != "" {
		store, err = storage.NewFileStoreAt(cfg.StorageDir)
	} else {
		store, err = storage.NewFileStore()
	}
	if err != nil {
		return nil, err
	}
	return NewWithStore(store, cfg), nil
}

// NewWithStore creates a manager over an injected store. This is the
// seam for using MemStore in tests.
func NewWithStore(store storage.Store, cfg Config) *Manager {
	if cfg.MaxPromptLength <= 0 {
		cfg.MaxPromptLength = DefaultMaxPromptLength
	}
	return &Manager{
		store:  store,
		engine: template.New(),
		config: cfg,
	}
}

// Engine returns the manager's template engine, for registering custom
// helpers.
func (m *Manager) Engine() *template.Engine {
	return m.engine
}

// LoadDefault returns the default system prompt. When none has been
// saved it returns the factory default; absence is not an error.
func (m *Manager) LoadDefault() (string, error) {
	content, err := m.store.LoadDefault()
	if errors.Is(err, storage.ErrNotFound) {
		return FactoryDefaultPrompt(), nil
	}
	if err != nil {
		return "", err
	}
	return content, nil
}

// SaveDefault replaces the default system prompt.
func (m *Manager) SaveDefault(content string) error {
	if err := m.validatePrompt(content); err != nil {
		return err
	}
	return m.store.SaveDefault(content)
}

// ResetDefault restores the default prompt to the factory default.
func (m *Manager) ResetDefault() error {
	return m.SaveDefault(FactoryDefaultPrompt())
}

// FactoryDefaultPrompt returns the built-in default prompt.
func FactoryDefaultPrompt() string {
	return factoryDefaultPrompt
}

// LoadPrompt returns a named prompt. Returns ErrPromptNotFound if the
// name does not exist.
func (m *Manager) LoadPrompt(name string) (string, error) {
	return m.store.Load(name)
}

// SavePrompt stores a named prompt. Returns ErrInvalidPrompt when the
// content is empty, exceeds the configured maximum length, or (with
// ValidateTemplates enabled) contains malformed template syntax.
func (m *Manager) SavePrompt(name, content string) error {
	if err := m.validatePrompt(content); err != nil {
		return err
	}
	return m.store.Save(name, content)
}

// DeletePrompt removes a named prompt. Returns ErrPromptNotFound if the
// name does not exist.
func (m *Manager) DeletePrompt(name string) error {
	return m.store.Delete(name)
}

// ListPrompts returns the names of all stored prompts.
func (m *Manager) ListPrompts() ([]string, error) {
	return m.store.List()
}

// PromptExists reports whether a named prompt is stored. It never fails.
func (m *Manager) PromptExists(name string) bool {
	return m.store.Exists(name)
}

// GetPromptInfo returns metadata for a named prompt.
func (m *Manager) GetPromptInfo(name string) (storage.Info, error) {
	return m.store.Info(name)
}

// RenderTemplate renders a template with variables. With
// ValidateTemplates enabled the syntax is checked eagerly before
// rendering. Malformed syntax surfaces as *template.Error.
func (m *Manager) RenderTemplate(tmpl string, vars map[string]string) (string, error) {
	if m.config.ValidateTemplates {
		if err := m.engine.Validate(tmpl); err != nil {
			return "", err
		}
	}
	return m.engine.Render(tmpl, vars)
}

// validatePrompt checks content against the configured limits.
func (m *Manager) validatePrompt(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: prompt is empty", ErrInvalidPrompt)
	}
	if n := utf8.RuneCountInString(content); n > m.config.MaxPromptLength {
		return fmt.Errorf("%w: prompt is %d characters, maximum is %d",
			ErrInvalidPrompt, n, m.config.MaxPromptLength)
	}
	if m.config.ValidateTemplates {
		if err := m.engine.Validate(content); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPrompt, err)
		}
	}
	return nil
}

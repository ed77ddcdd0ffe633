package promptkit

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultMaxPromptLength is the maximum prompt length in characters when
// no limit is configured.
const DefaultMaxPromptLength = 5000

// Config controls prompt storage and validation.
type Config struct {
	// StorageDir overrides the storage directory. Empty means the
	// platform config location (~/.config/promptkit on Linux).
	StorageDir string `yaml:"storage_dir"`

	// ValidateTemplates enables eager template syntax checking on save
	// and render.
	ValidateTemplates bool `yaml:"validate_templates"`

	// MaxPromptLength is the maximum prompt length in characters.
	MaxPromptLength int `yaml:"max_prompt_length"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ValidateTemplates: true,
		MaxPromptLength:   DefaultMaxPromptLength,
	}
}

// DefaultConfigPath returns the standard config file location under the
// platform config directory.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "promptkit", "config.yaml"), nil
}

// LoadConfigFile reads a config file. A missing file yields the defaults;
// keys absent from the file keep their default values.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.MaxPromptLength <= 0 {
		cfg.MaxPromptLength = DefaultMaxPromptLength
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Package config handles project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents project configuration stored in .qcref/config.yml.
type Config struct {
	// CrossrefMailto is the courtesy contact sent with Crossref
	// requests. CROSSREF_MAILTO in the environment overrides it.
	CrossrefMailto string `yaml:"crossref_mailto,omitempty"`
}

const (
	QcrefDir   = ".qcref"
	ConfigFile = "config.yml"
	DBFile     = "project.db"
)

// QcrefPath returns the path to the .qcref directory from a root path.
func QcrefPath(root string) string {
	return filepath.Join(root, QcrefDir)
}

// ConfigPath returns the path to config.yml from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, QcrefDir, ConfigFile)
}

// DBPath returns the path to project.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, QcrefDir, DBFile)
}

// IsProject checks if the given path contains a qcref project.
func IsProject(root string) bool {
	info, err := os.Stat(QcrefPath(root))
	return err == nil && info.IsDir()
}

// FindProject walks up from the given path to find a qcref project.
// Returns the project root path or an error if not found.
func FindProject(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsProject(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a qcref project (no .qcref directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the project at the given root.
// A missing config file yields defaults, not an error.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the project at the given root.
func (c *Config) Save(root string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Mailto returns the Crossref courtesy contact: the environment
// variable wins over the config file value.
func (c *Config) Mailto() string {
	if m := os.Getenv("CROSSREF_MAILTO"); m != "" {
		return m
	}
	return c.CrossrefMailto
}

// Package config provides repository configuration management: the
// committer identity and the named remote records, persisted as a single
// JSON file in the repository metadata directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"kit.dev/kit/internal/object"
)

// User identifies the committer.
type User struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Config is the on-disk configuration: user identity plus the remote
// name -> URL registry.
type Config struct {
	User    User              `json:"user"`
	Remotes map[string]string `json:"remotes,omitempty"`
}

// Author renders the user as "Name <email>" for commit metadata, or ""
// when nothing is configured.
func (c *Config) Author() string {
	if c.User.Name == "" && c.User.Email == "" {
		return ""
	}
	return fmt.Sprintf("%s <%s>", c.User.Name, c.User.Email)
}

// Load reads the config file at path. A missing file loads as defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{Remotes: map[string]string{}}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Remotes == nil {
		cfg.Remotes = map[string]string{}
	}
	return cfg, nil
}

// Save writes the config to path atomically.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := object.SafeWrite(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

package repo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio"
)

// Config stores repository-local settings.
type Config struct {
	User UserConfig `toml:"user"`
}

// UserConfig carries identity defaults used when committing.
type UserConfig struct {
	Name string `toml:"name"`
}

func (r *Repo) configPath() string {
	return filepath.Join(r.NitDir, "config.toml")
}

// ReadConfig reads .nit/config.toml. A missing file returns an empty
// config.
func (r *Repo) ReadConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(r.configPath(), &cfg); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return &cfg, nil
}

// WriteConfig atomically writes .nit/config.toml.
func (r *Repo) WriteConfig(cfg *Config) error {
	if cfg == nil {
		cfg = &Config{}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("write config: encode: %w", err)
	}
	if err := renameio.WriteFile(r.configPath(), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// AuthorName resolves the default commit author: config user.name, then
// $USER, then "unknown".
func (r *Repo) AuthorName() string {
	cfg, err := r.ReadConfig()
	if err == nil && cfg.User.Name != "" {
		return cfg.User.Name
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "unknown"
}

// Package config loads the distpub configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/relware/distpub/model"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "~/.distpub/config.yaml"

// Config holds user-configurable publisher settings.
type Config struct {
	Host       string `yaml:"host"`
	User       string `yaml:"user"`
	Port       int    `yaml:"port"`
	RemoteBase string `yaml:"remote_base"`
	DistDir    string `yaml:"dist_dir"`
	Target     string `yaml:"target"`
	Bucket     string `yaml:"bucket"`
	Region     string `yaml:"region"`
	Profile    string `yaml:"profile"`
	Identity   string `yaml:"identity_file"`
	Workers    int    `yaml:"workers"`
}

// ApplyDefaults fills zero-valued fields with built-in defaults.
func (cfg *Config) ApplyDefaults() {
	if cfg.Port == 0 {
		cfg.Port = 22
	}
	if cfg.RemoteBase == "" {
		cfg.RemoteBase = "electrum-downloads"
	}
	if cfg.Target == "" {
		cfg.Target = model.TargetSFTP
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
}

// Load reads the config file at path. An empty path falls back to the default
// location; a missing default file is not an error, a missing explicit one is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	resolved, err := expandHome(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", resolved, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", resolved, err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// Merge overlays non-zero flag values onto the config, returning effective flags.
func Merge(flags model.Flags, cfg Config) model.Flags {
	if flags.Host == "" {
		flags.Host = cfg.Host
	}
	if flags.User == "" {
		flags.User = cfg.User
	}
	if flags.Port == 0 {
		flags.Port = cfg.Port
	}
	if flags.RemoteBase == "" {
		flags.RemoteBase = cfg.RemoteBase
	}
	if flags.DistDir == "" {
		flags.DistDir = cfg.DistDir
	}
	if flags.Target == "" {
		flags.Target = cfg.Target
	}
	if flags.Bucket == "" {
		flags.Bucket = cfg.Bucket
	}
	if flags.Region == "" {
		flags.Region = cfg.Region
	}
	if flags.Profile == "" {
		flags.Profile = cfg.Profile
	}
	if flags.Identity == "" {
		flags.Identity = cfg.Identity
	}
	if flags.Workers == 0 {
		flags.Workers = cfg.Workers
	}
	return flags
}

func expandHome(p string) (string, error) {
	if p == "~" || len(p) > 1 && p[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			return home, nil
		}
		return filepath.Join(home, p[2:]), nil
	}
	return filepath.Clean(p), nil
}

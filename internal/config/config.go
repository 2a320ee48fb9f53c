// Package config loads the demo CLI's persisted option set from YAML,
// adapted from _examples/serty2005-clipQueue/internal/config/config.go
// (Load/SafeConfig/validateConfig idiom), generalized from clipQueue's
// macro/hotkey document to this library's much smaller surface: which of
// the functional options in options.go the demo should apply.
package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of the demo CLI's persisted settings.
type Config struct {
	LogLevel        string `yaml:"log_level"`
	EpochTimestamps bool   `yaml:"epoch_timestamps"`
	X11HeadMode     string `yaml:"x11_head_mode"` // "", "xinerama", "xrandr"
}

// Default returns the baseline configuration used when no file is present.
func Default() Config {
	return Config{LogLevel: "info"}
}

// SafeConfig guards a Config behind a mutex for concurrent reload support,
// mirroring clipQueue's SafeConfig wrapper.
type SafeConfig struct {
	mu  sync.RWMutex
	cfg Config
}

func NewSafeConfig(cfg Config) *SafeConfig {
	return &SafeConfig{cfg: cfg}
}

func (s *SafeConfig) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *SafeConfig) Set(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// Load reads and validates a YAML config file, returning the default
// config if path does not exist.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.X11HeadMode {
	case "", "xinerama", "xrandr":
	default:
		return fmt.Errorf("invalid x11_head_mode %q: want \"\", \"xinerama\", or \"xrandr\"", cfg.X11HeadMode)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	return nil
}

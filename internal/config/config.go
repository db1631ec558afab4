package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Input InputConfig `yaml:"input"`
	Log   LogConfig   `yaml:"log"`
}

type InputConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{Log: LogConfig{Level: "info"}}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix HWOOP_:
//
//	HWOOP_INPUT_PATH, HWOOP_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HWOOP_INPUT_PATH"); v != "" {
		cfg.Input.Path = v
	}
	if v := os.Getenv("HWOOP_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c *Config) validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts the configured log level name to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.Log.Level {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
}

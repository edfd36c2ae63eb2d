// Package config loads CLI and server settings from an optional YAML or JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/nhohnhehr/pkg/adapters/stream"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "nhohnhehr.yaml"

// DefaultServeMaxSteps bounds each program run served over HTTP or MCP.
const DefaultServeMaxSteps = 1_000_000

// Config holds every setting the commands read.
type Config struct {
	Mode     string `mapstructure:"mode"`
	Debug    bool   `mapstructure:"debug"`
	MaxSteps uint64 `mapstructure:"max_steps"`
	LogFile  string `mapstructure:"log_file"`
	Programs string `mapstructure:"programs"`

	Serve ServeConfig `mapstructure:"serve"`
	Redis RedisConfig `mapstructure:"redis"`
}

// ServeConfig configures the HTTP and MCP surfaces.
type ServeConfig struct {
	Addr     string `mapstructure:"addr"`
	MaxSteps uint64 `mapstructure:"max_steps"`
}

// RedisConfig configures the Redis program store.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Mode:     string(stream.DefaultMode),
		Programs: ".",
		Serve: ServeConfig{
			Addr:     ":8080",
			MaxSteps: DefaultServeMaxSteps,
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "nhohnhehr:program:",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(data, strings.ToLower(filepath.Ext(path)) == ".json", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode merges YAML (or JSON) data into cfg, keeping fields the data omits.
func Decode(data []byte, isJSON bool, cfg *Config) error {
	raw := map[string]any{}
	if isJSON {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return cfg.Validate()
}

// Validate checks values that cannot be expressed by their types.
func (c *Config) Validate() error {
	if _, err := stream.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Serve.MaxSteps == 0 {
		return fmt.Errorf("serve.max_steps must be positive")
	}
	return nil
}

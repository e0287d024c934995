// Package config loads the TOML configuration shared by every command and
// sets up the process logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the TOML document.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Server ServerConfig `toml:"server"`
	Engine EngineConfig `toml:"engine"`
	CLI    CLIConfig    `toml:"cli"`
	Batch  BatchConfig  `toml:"batch"`
}

// LogConfig controls level and optional rotated file output.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// ServerConfig controls the HTTP adapter.
type ServerConfig struct {
	Addr               string   `toml:"addr"`
	GinMode            string   `toml:"gin_mode"`
	ShutdownTimeoutSec int      `toml:"shutdown_timeout_sec"`
	ReadTimeoutSec     int      `toml:"read_timeout_sec"`
	RateLimitRPS       float64  `toml:"rate_limit_rps"`
	RateLimitBurst     int      `toml:"rate_limit_burst"`
	CORSOrigins        []string `toml:"cors_origins"`
}

// EngineConfig bounds the size of accepted graphs. Zero means unlimited.
type EngineConfig struct {
	MaxNodes int `toml:"max_nodes"`
	MaxEdges int `toml:"max_edges"`
}

// CLIConfig controls the interactive session.
type CLIConfig struct {
	Diagram bool `toml:"diagram"`
}

// BatchConfig controls the batch runner.
type BatchConfig struct {
	Workers int `toml:"workers"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 7,
			MaxAgeDays: 30,
			Compress:   true,
		},
		Server: ServerConfig{
			Addr:               "127.0.0.1:8080",
			GinMode:            "release",
			ShutdownTimeoutSec: 10,
			ReadTimeoutSec:     15,
			RateLimitRPS:       50,
			RateLimitBurst:     100,
			CORSOrigins:        []string{"*"},
		},
		Engine: EngineConfig{
			MaxNodes: 10000,
			MaxEdges: 100000,
		},
		Batch: BatchConfig{Workers: 4},
	}
}

// Load decodes path over Default() and validates the result.
// An empty path yields the defaults; a missing file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode reads a TOML document from r over Default().
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Server.GinMode) {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: server.gin_mode %q", ErrInvalidConfig, c.Server.GinMode)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if c.Server.RateLimitRPS < 0 || c.Server.RateLimitBurst < 0 {
		return fmt.Errorf("%w: rate limit must be >= 0", ErrInvalidConfig)
	}
	if c.Server.RateLimitRPS > 0 && c.Server.RateLimitBurst == 0 {
		return fmt.Errorf("%w: server.rate_limit_burst must be > 0 when rate_limit_rps is set", ErrInvalidConfig)
	}
	if c.Server.ShutdownTimeoutSec < 0 || c.Server.ReadTimeoutSec < 0 {
		return fmt.Errorf("%w: timeouts must be >= 0", ErrInvalidConfig)
	}
	if c.Engine.MaxNodes < 0 || c.Engine.MaxEdges < 0 {
		return fmt.Errorf("%w: engine limits must be >= 0", ErrInvalidConfig)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: batch.workers must be >= 1", ErrInvalidConfig)
	}

	return nil
}

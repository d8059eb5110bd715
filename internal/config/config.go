// Package config loads the mcsh configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mcrs/mcrs-go/mcprotocol"
)

// Environment variables consulted by Load.
const (
	// EnvConfig names the config file when no path is given.
	EnvConfig = "MCSH_CONFIG"
	// EnvAddress overrides server.address.
	EnvAddress = "MCSH_ADDRESS"
)

// Config is the root of the configuration file.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	REPL    REPLConfig    `yaml:"repl"`
}

// ServerConfig selects the ELCI server to connect to.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

// LogConfig sets the slog level ("debug", "info", "warn", "error") and the
// handler format ("text" or "json").
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus endpoint. An empty Listen address
// disables it.
type MetricsConfig struct {
	Listen string `yaml:"listen"`
}

// REPLConfig controls line editing. An empty HistoryFile selects
// ~/.mcsh_history.
type REPLConfig struct {
	HistoryFile string `yaml:"history_file"`
	HistorySize int    `yaml:"history_size"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address:     mcprotocol.DefaultAddress,
			DialTimeout: mcprotocol.ConnectionTimeout,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		REPL: REPLConfig{
			HistorySize: 500,
		},
	}
}

// Load reads the YAML file at path on top of Default.
//
// If path is empty the MCSH_CONFIG environment variable is used; if that is
// also empty, or the file does not exist, the defaults are returned.
// MCSH_ADDRESS, when set, replaces server.address in every case.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if addr := os.Getenv(EnvAddress); addr != "" {
		cfg.Server.Address = addr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that yaml decoding cannot.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return errors.New("config: server.address is empty")
	}
	if c.Server.DialTimeout <= 0 {
		return fmt.Errorf("config: server.dial_timeout must be positive, got %s", c.Server.DialTimeout)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format must be text or json, got %q", c.Log.Format)
	}
	if c.REPL.HistorySize < 0 {
		return fmt.Errorf("config: repl.history_size must not be negative, got %d", c.REPL.HistorySize)
	}
	return nil
}

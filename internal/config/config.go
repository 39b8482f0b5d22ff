// Package config loads scheduler settings from TOML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/veenaghorakavi/SampleScheduler/internal/taskfile"
)

// FileName is the config file searched for in the working directory and
// the home directory.
const FileName = ".samplescheduler.toml"

// Default values.
const (
	DefaultFormat   = "auto"
	DefaultOutput   = "pretty"
	DefaultLogLevel = "warn"
	DefaultPort     = 4517
)

// Config holds the full configuration for the scheduler CLI. Flags
// override these values; values here override the defaults.
type Config struct {
	Format    string `toml:"format"` // input format override
	Output    string `toml:"output"` // pretty | json
	NoColor   bool   `toml:"no_color"`
	ShowWaves bool   `toml:"show_waves"`
	LogLevel  string `toml:"log_level"` // debug | info | warn | error
	Port      int    `toml:"port"`      // viewer port, 0 picks a free one
}

// Defaults returns a Config with every field at its default.
func Defaults() *Config {
	return &Config{
		Format:    DefaultFormat,
		Output:    DefaultOutput,
		ShowWaves: true,
		LogLevel:  DefaultLogLevel,
		Port:      DefaultPort,
	}
}

// Load reads configuration. An explicit path must exist; with an empty
// path Load tries .samplescheduler.toml in the working directory, then in
// the home directory, and falls back to defaults when neither exists.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		path = findConfigFile()
		if path == "" {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	ok := false
	for _, f := range taskfile.Formats() {
		if c.Format == f {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("unknown input format %q", c.Format)
	}

	switch c.Output {
	case "pretty", "json":
	default:
		return fmt.Errorf("output must be \"pretty\" or \"json\", got %q", c.Output)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	return nil
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

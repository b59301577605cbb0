package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"adexdump/internal/render"
	"adexdump/internal/report"
)

// Config holds all adexdump configuration.
type Config struct {
	// Report defaults; command-line flags take precedence.
	Report ReportConfig `yaml:"report"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ReportConfig configures filtering and output defaults.
type ReportConfig struct {
	MaxPasswordAge int    `yaml:"max_password_age"` // days
	Format         string `yaml:"format"`           // txt, csv, json, sqlite
	Outfile        string `yaml:"outfile"`          // "-" = stdout
	UTC            bool   `yaml:"utc"`              // render timestamps in UTC instead of local time
}

// Environment variables that override file values.
const (
	EnvMaxPasswordAge = "ADEXDUMP_MAX_PASSWORD_AGE"
	EnvFormat         = "ADEXDUMP_FORMAT"
	EnvLogLevel       = "ADEXDUMP_LOG_LEVEL"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			MaxPasswordAge: report.DefaultMaxPasswordAge,
			Format:         string(render.FormatText),
			Outfile:        render.Stdout,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing
// file yields the defaults; environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvMaxPasswordAge); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMaxPasswordAge, v, err)
		}
		c.Report.MaxPasswordAge = days
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Report.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Report.MaxPasswordAge < 0 {
		return fmt.Errorf("max_password_age must not be negative (got %d)", c.Report.MaxPasswordAge)
	}

	if _, err := render.ParseFormat(c.Report.Format); err != nil {
		return fmt.Errorf("invalid report format: %w", err)
	}

	if c.Report.Outfile == "" {
		return fmt.Errorf("outfile must not be empty (use - for stdout)")
	}

	return c.Logging.Validate()
}

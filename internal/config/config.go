package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/crcs-platform/campusctl/internal/errors"
)

// DefaultAPIURL is the development API gateway address.
const DefaultAPIURL = "http://localhost:6000"

// Config aggregates runtime configuration for the CLI.
//
// Values are resolved in order: built-in defaults, the global config file
// (~/.campusctl/config.yaml), a .env file in the working directory, and
// finally environment variables. Later sources win.
type Config struct {
	// APIURL is the base URL of the CRCS API gateway.
	APIURL string `yaml:"api_url"`

	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Output is the default output format (text, json, yaml).
	Output string `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIURL:         DefaultAPIURL,
		TimeoutSeconds: 30,
		LogLevel:       "warn",
		Output:         "text",
	}
}

// Home returns the campusctl home directory. CAMPUSCTL_HOME overrides the
// default of ~/.campusctl.
func Home() string {
	if home := os.Getenv("CAMPUSCTL_HOME"); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		// Fall back to a hidden directory in the working directory.
		return ".campusctl"
	}
	return filepath.Join(userHome, ".campusctl")
}

// Path returns the location of the global configuration file.
func Path() string {
	return filepath.Join(Home(), "config.yaml")
}

// Load resolves the effective configuration.
//
// A missing config file or .env file is not an error; a malformed config
// file is.
func Load() (*Config, error) {
	cfg := Default()

	path := Path()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.NewConfigInvalidError(path, err)
		}
	case !os.IsNotExist(err):
		return nil, errors.NewConfigInvalidError(path, err)
	}

	// Best-effort .env support for development setups.
	_ = godotenv.Load()

	applyEnv(cfg)

	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 30
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CAMPUSCTL_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("CAMPUSCTL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CAMPUSCTL_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("CAMPUSCTL_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.TimeoutSeconds = secs
		}
	}
}

// Save writes cfg to the global configuration file, creating the campusctl
// home directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(Home(), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "failed to create campusctl home", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "failed to encode configuration", err)
	}

	if err := os.WriteFile(Path(), data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "failed to write configuration", err)
	}
	return nil
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Get returns the value of a configuration key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api_url":
		return c.APIURL, nil
	case "timeout_seconds":
		return strconv.Itoa(c.TimeoutSeconds), nil
	case "log_level":
		return c.LogLevel, nil
	case "output":
		return c.Output, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// Set updates a configuration key in memory. Call Save to persist.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api_url":
		c.APIURL = value
	case "timeout_seconds":
		secs, err := strconv.Atoi(value)
		if err != nil || secs <= 0 {
			return fmt.Errorf("timeout_seconds must be a positive integer, got %q", value)
		}
		c.TimeoutSeconds = secs
	case "log_level":
		c.LogLevel = value
	case "output":
		c.Output = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

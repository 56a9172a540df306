// Package common provides shared utilities for the IFA proposal engine
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the proposal engine
type Config struct {
	Environment string         `toml:"environment"`
	Server      ServerConfig   `toml:"server"`
	Storage     StorageConfig  `toml:"storage"`
	Clients     ClientsConfig  `toml:"clients"`
	Proposal    ProposalConfig `toml:"proposal"`
	Logging     LoggingConfig  `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds storage configuration for the session store.
type StorageConfig struct {
	Path string `toml:"path"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Gemini GeminiConfig `toml:"gemini"`
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	RateLimit   float64 `toml:"rate_limit"` // requests per second
	Timeout     string  `toml:"timeout"`
	MaxAttempts int     `toml:"max_attempts"` // retry ceiling for quota failures
}

// GetTimeout parses and returns the timeout duration
func (c *GeminiConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

// ProposalConfig holds product policy settings for proposal assembly.
type ProposalConfig struct {
	// DefaultAmount is the placeholder value assigned to a freshly added
	// recommended or manually selected asset until the adviser edits it.
	DefaultAmount float64 `toml:"default_amount"`
	BaseCurrency  string  `toml:"base_currency"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Path: "data/sessions",
		},
		Clients: ClientsConfig{
			Gemini: GeminiConfig{
				Model:       "gemini-2.0-flash",
				RateLimit:   2,
				Timeout:     "120s",
				MaxAttempts: 3,
			},
		},
		Proposal: ProposalConfig{
			DefaultAmount: 1000000,
			BaseCurrency:  "JPY",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	validateProposal(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("IFA_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("IFA_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("IFA_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("IFA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("IFA_DATA_PATH"); path != "" {
		config.Storage.Path = path
	}

	if amount := os.Getenv("IFA_DEFAULT_AMOUNT"); amount != "" {
		if v, err := strconv.ParseFloat(amount, 64); err == nil && v > 0 {
			config.Proposal.DefaultAmount = v
		}
	}
}

// ResolveAPIKey resolves the Gemini API key from environment or config fallback
func ResolveAPIKey(fallback string) (string, error) {
	for _, name := range []string{"GEMINI_API_KEY", "IFA_GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("gemini API key not found in environment or config")
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// validateProposal ensures proposal policy values are usable.
func validateProposal(config *Config) {
	if config.Proposal.DefaultAmount <= 0 {
		config.Proposal.DefaultAmount = 1000000
	}
	if config.Proposal.BaseCurrency == "" {
		config.Proposal.BaseCurrency = "JPY"
	}
}

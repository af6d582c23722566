// Package config provides configuration loading and management for the
// entity extraction service and CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/nluentities/language"
)

// Config represents the complete nluentities configuration
type Config struct {
	Parser  ParserConfig  `yaml:"parser"`
	NATS    NATSConfig    `yaml:"nats"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

// ParserConfig configures the extraction parser
type ParserConfig struct {
	// PreloadLanguages lists language codes whose engines are built at
	// startup instead of on first use (e.g., ["en", "fr"])
	PreloadLanguages []string `yaml:"preload_languages"`
}

// NATSConfig configures the NATS connection for the extraction service
type NATSConfig struct {
	// URL is the NATS server URL (default: nats://127.0.0.1:4222)
	URL string `yaml:"url"`
	// Subject is the request/reply subject served (default: nlu.parse)
	Subject string `yaml:"subject"`
	// RequestTimeout is the maximum time to wait when issuing requests
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// MetricsConfig configures the Prometheus metrics endpoint
type MetricsConfig struct {
	// Enabled turns the /metrics HTTP endpoint on or off
	Enabled bool `yaml:"enabled"`
	// Addr is the listen address for the metrics endpoint
	Addr string `yaml:"addr"`
}

// LogConfig configures structured logging
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level"`
	// Format selects the log output format (text or json)
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			PreloadLanguages: nil, // Lazy per-language construction
		},
		NATS: NATSConfig{
			URL:            "nats://127.0.0.1:4222",
			Subject:        "nlu.parse",
			RequestTimeout: 5 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Addr:    ":9090",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	for _, code := range c.Parser.PreloadLanguages {
		if _, err := language.FromCode(code); err != nil {
			return fmt.Errorf("parser.preload_languages: %w", err)
		}
	}
	if c.NATS.URL == "" {
		return fmt.Errorf("nats.url is required")
	}
	if c.NATS.Subject == "" {
		return fmt.Errorf("nats.subject is required")
	}
	if c.NATS.RequestTimeout <= 0 {
		return fmt.Errorf("nats.request_timeout must be positive")
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return fmt.Errorf("metrics.addr is required when metrics are enabled")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Parser
	if len(other.Parser.PreloadLanguages) > 0 {
		c.Parser.PreloadLanguages = other.Parser.PreloadLanguages
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}
	if other.NATS.RequestTimeout != 0 {
		c.NATS.RequestTimeout = other.NATS.RequestTimeout
	}

	// Metrics
	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
	c.Metrics.Enabled = other.Metrics.Enabled

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}
}

// PreloadedLanguages resolves the configured preload codes into languages.
// Call Validate first; unknown codes are skipped here.
func (c *Config) PreloadedLanguages() []language.Language {
	var langs []language.Language
	for _, code := range c.Parser.PreloadLanguages {
		lang, err := language.FromCode(code)
		if err != nil {
			continue
		}
		langs = append(langs, lang)
	}
	return langs
}

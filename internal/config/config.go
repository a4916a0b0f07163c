// If you are AI: This file defines the configuration structure for amfd.
// It uses strict YAML decoding and explicit defaults.

package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the complete daemon configuration.
// All fields must have explicit defaults or be required.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Inspect InspectConfig `yaml:"inspect"`
	API     APIConfig     `yaml:"api"`
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"` // Port for the inspect and API endpoints
}

// InspectConfig defines payload decoding settings.
type InspectConfig struct {
	MaxPayloadBytes int64 `yaml:"max_payload_bytes"` // Upper bound on accepted payload size
	Trace           bool  `yaml:"trace,omitempty"`   // Emit decode traces to the log
}

// APIConfig defines the HTTP API settings.
type APIConfig struct {
	Enabled       *bool `yaml:"enabled"`        // Serve /api routes; nil means enabled
	RecentEntries int   `yaml:"recent_entries"` // Decode journal capacity served by /api/recent
}

// IsEnabled reports whether the API routes should be registered.
func (a *APIConfig) IsEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// Load reads configuration from a YAML file.
// Returns an error if the file cannot be read or decoded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields

	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Apply defaults
	cfg.setDefaults()

	return &cfg, nil
}

// setDefaults applies explicit default values to unset fields.
func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8316
	}
	if c.Inspect.MaxPayloadBytes == 0 {
		c.Inspect.MaxPayloadBytes = 1 << 20
	}
	if c.API.RecentEntries == 0 {
		c.API.RecentEntries = 256
	}
}

// If you are AI: This file validates configuration values and returns descriptive errors.

package config

import (
	"fmt"
)

// maxPayloadCap bounds max_payload_bytes; one decode buffers the whole
// payload in memory.
const maxPayloadCap = 64 << 20

// maxRecentEntries bounds the decode journal; every entry stays resident.
const maxRecentEntries = 65536

// Validate checks that all configuration values are within acceptable ranges.
// Returns an error describing the first validation failure found.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Inspect.Validate(); err != nil {
		return fmt.Errorf("inspect config: %w", err)
	}
	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("api config: %w", err)
	}
	return nil
}

// Validate checks server configuration values.
func (s *ServerConfig) Validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", s.Port)
	}
	return nil
}

// Validate checks payload decoding configuration values.
func (i *InspectConfig) Validate() error {
	if i.MaxPayloadBytes <= 0 {
		return fmt.Errorf("max_payload_bytes must be positive, got %d", i.MaxPayloadBytes)
	}
	if i.MaxPayloadBytes > maxPayloadCap {
		return fmt.Errorf("max_payload_bytes must be at most %d, got %d", maxPayloadCap, i.MaxPayloadBytes)
	}
	return nil
}

// Validate checks API configuration values.
func (a *APIConfig) Validate() error {
	if a.RecentEntries <= 0 {
		return fmt.Errorf("recent_entries must be positive, got %d", a.RecentEntries)
	}
	if a.RecentEntries > maxRecentEntries {
		return fmt.Errorf("recent_entries must be at most %d, got %d", maxRecentEntries, a.RecentEntries)
	}
	return nil
}

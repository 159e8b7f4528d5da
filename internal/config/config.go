// Package config loads and validates the application configuration.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Data      DataConfig      `mapstructure:"data"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`      // Bind address (e.g., 0.0.0.0 for all interfaces)
	HTTPPort int    `mapstructure:"http_port"` // HTTP server port
}

// DataConfig represents the series storage configuration
type DataConfig struct {
	Path string `mapstructure:"path"` // Path to the rates CSV file
}

// AnalyticsConfig holds the default analytics parameters applied when a
// caller does not supply its own.
type AnalyticsConfig struct {
	DefaultWindow    int     `mapstructure:"default_window"`    // Moving-average window in rows
	DefaultThreshold float64 `mapstructure:"default_threshold"` // Variation threshold in percent
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
	TimeFormat string `mapstructure:"time_format"` // RFC3339, Unix, Kitchen
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Data.Validate(); err != nil {
		return fmt.Errorf("data config: %w", err)
	}
	if err := c.Analytics.Validate(); err != nil {
		return fmt.Errorf("analytics config: %w", err)
	}
	return nil
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.HTTPPort)
	}
	return nil
}

// Validate validates the data configuration
func (c *DataConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("path must not be empty")
	}
	return nil
}

// Validate validates the analytics configuration
func (c *AnalyticsConfig) Validate() error {
	if c.DefaultWindow <= 0 {
		return fmt.Errorf("default_window must be positive, got %d", c.DefaultWindow)
	}
	if c.DefaultThreshold < 0 {
		return fmt.Errorf("default_threshold must not be negative, got %v", c.DefaultThreshold)
	}
	return nil
}

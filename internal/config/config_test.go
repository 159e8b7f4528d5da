package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for explicit missing config file")
	}

	// No explicit path: defaults apply when no config file is found.
	cwd, _ := os.Getwd()
	tmp := t.TempDir()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	defer func() { _ = os.Chdir(cwd) }()

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.HTTPPort != 5000 {
		t.Errorf("Expected default http_port 5000, got %d", cfg.Server.HTTPPort)
	}
	if cfg.Data.Path != "./data/rates.csv" {
		t.Errorf("Expected default data path, got %q", cfg.Data.Path)
	}
	if cfg.Analytics.DefaultWindow != 30 {
		t.Errorf("Expected default window 30, got %d", cfg.Analytics.DefaultWindow)
	}
	if cfg.Analytics.DefaultThreshold != 1.0 {
		t.Errorf("Expected default threshold 1.0, got %v", cfg.Analytics.DefaultThreshold)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  host: 127.0.0.1
  http_port: 8080
data:
  path: /var/lib/ratescope/rates.csv
analytics:
  default_window: 7
  default_threshold: 2.5
logging:
  level: debug
  format: console
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.HTTPPort != 8080 {
		t.Errorf("Unexpected server config: %+v", cfg.Server)
	}
	if cfg.Analytics.DefaultWindow != 7 {
		t.Errorf("Expected window 7, got %d", cfg.Analytics.DefaultWindow)
	}
	if cfg.Analytics.DefaultThreshold != 2.5 {
		t.Errorf("Expected threshold 2.5, got %v", cfg.Analytics.DefaultThreshold)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Expected console format, got %q", cfg.Logging.Format)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"port too large", func(c *Config) { c.Server.HTTPPort = 70000 }},
		{"empty data path", func(c *Config) { c.Data.Path = "" }},
		{"non-positive window", func(c *Config) { c.Analytics.DefaultWindow = 0 }},
		{"negative threshold", func(c *Config) { c.Analytics.DefaultThreshold = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Server:    ServerConfig{Host: "0.0.0.0", HTTPPort: 5000},
				Data:      DataConfig{Path: "./data/rates.csv"},
				Analytics: AnalyticsConfig{DefaultWindow: 30, DefaultThreshold: 1.0},
			}
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Storage.Backend != "badger" {
		t.Errorf("Storage.Backend = %q, want badger", cfg.Storage.Backend)
	}
	if cfg.Storage.ProfileID != "local" {
		t.Errorf("Storage.ProfileID = %q, want local", cfg.Storage.ProfileID)
	}
	if cfg.Recommend.Limit != 5 {
		t.Errorf("Recommend.Limit = %d, want 5", cfg.Recommend.Limit)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

// TestEnvTransformFunc tests environment variable name mapping
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"SHUTDOWN_TIMEOUT", "server.shutdown_timeout"},
		{"STORAGE_BACKEND", "storage.backend"},
		{"PROFILE_ID", "storage.profile_id"},
		{"STORE_BREAKER_FAILURES", "storage.breaker_failures"},
		{"RECOMMEND_LIMIT", "recommend.limit"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// TestFindConfigFile tests CONFIG_PATH lookup
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}

	t.Setenv(ConfigPathEnvVar, filepath.Join(tmpDir, "missing.yaml"))
	if got := findConfigFile(); got == filepath.Join(tmpDir, "missing.yaml") {
		t.Error("findConfigFile() returned a path that does not exist")
	}
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("RECOMMEND_LIMIT", "8")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORE_BREAKER_TIMEOUT", "5s")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("Storage.Backend = %q, want memory", cfg.Storage.Backend)
	}
	if cfg.Recommend.Limit != 8 {
		t.Errorf("Recommend.Limit = %d, want 8", cfg.Recommend.Limit)
	}
	if cfg.Storage.BreakerTimeout != 5*time.Second {
		t.Errorf("Storage.BreakerTimeout = %v, want 5s", cfg.Storage.BreakerTimeout)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}

	// Defaults still apply for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Storage.ProfileID != "local" {
		t.Errorf("Storage.ProfileID = %q, want local (default)", cfg.Storage.ProfileID)
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
// and that environment variables win over it.
func TestLoadWithKoanfConfigFile(t *testing.T) {
	configContent := `
server:
  port: 7000
  host: 127.0.0.1
storage:
  backend: file
  path: /tmp/shelfmatch-profiles
recommend:
  limit: 3
security:
  cors_origins:
    - https://shelf.example
logging:
  level: warn
  format: console
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(configContent), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("RECOMMEND_LIMIT", "4")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7000 || cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Storage.Backend != "file" || cfg.Storage.Path != "/tmp/shelfmatch-profiles" {
		t.Errorf("Storage = %+v", cfg.Storage)
	}
	if cfg.Recommend.Limit != 4 {
		t.Errorf("Recommend.Limit = %d, want 4 (env overrides file)", cfg.Recommend.Limit)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"https://shelf.example"}) {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

// TestLoadWithKoanfValidation tests that invalid values are rejected
func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"HTTP_PORT": "70000"}},
		{"bad backend", map[string]string{"STORAGE_BACKEND": "postgres"}},
		{"limit zero", map[string]string{"RECOMMEND_LIMIT": "0"}},
		{"limit too large", map[string]string{"RECOMMEND_LIMIT": "51"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}},
		{"profile id with slash", map[string]string{"PROFILE_ID": "a/b"}},
		{"profile id dot", map[string]string{"PROFILE_ID": "."}},
		{"profile id dot dot", map[string]string{"PROFILE_ID": ".."}},
		{"empty path for file backend", map[string]string{"STORAGE_BACKEND": "file", "STORAGE_PATH": ""}},
		{"rate limit window too small", map[string]string{"RATE_LIMIT_WINDOW": "10ms"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadWithKoanf(); err == nil {
				t.Error("LoadWithKoanf() expected error, got nil")
			}
		})
	}
}

func TestLoadWithKoanf_RateLimitDisabledSkipsBounds(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("DISABLE_RATE_LIMIT", "true")
	t.Setenv("RATE_LIMIT_REQUESTS", "0")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("RateLimitDisabled should be true")
	}
}

func TestServerConfig_Addr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := s.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", got)
	}
}

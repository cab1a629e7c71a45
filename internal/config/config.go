// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Storage   StorageConfig   `koanf:"storage"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StorageConfig selects and tunes the profile store.
//
// Environment Variables:
//   - STORAGE_BACKEND: badger (default), file, or memory
//   - STORAGE_PATH: BadgerDB directory or JSON file directory
//   - PROFILE_ID: key the local profile is stored under (default: local)
//   - STORE_BREAKER_FAILURES: consecutive failures before the breaker opens
//   - STORE_BREAKER_TIMEOUT: how long the breaker stays open
//   - STORAGE_GC_INTERVAL: BadgerDB value-log GC period (default: 10m)
type StorageConfig struct {
	Backend         string        `koanf:"backend" validate:"oneof=badger file memory"`
	Path            string        `koanf:"path"`
	ProfileID       string        `koanf:"profile_id" validate:"required,excludesall=/\\"`
	BreakerFailures uint32        `koanf:"breaker_failures" validate:"min=1,max=100"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout" validate:"gt=0"`
	GCInterval      time.Duration `koanf:"gc_interval" validate:"gte=0"`
}

// RecommendConfig holds recommender settings
type RecommendConfig struct {
	// Limit caps each recommendation list. Default: 5
	Limit int `koanf:"limit" validate:"min=1,max=50"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

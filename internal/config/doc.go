// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package config provides centralized configuration management for Shelfmatch.

# Configuration Sources

Configuration is layered with koanf, later layers overriding earlier ones:

 1. Struct defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, ./config.yaml, /etc/shelfmatch/config.yaml
 3. Environment variables (explicit name mapping, see envMappings)

# Configuration Structure

  - ServerConfig: HTTP listen address, request and shutdown timeouts
  - StorageConfig: profile store backend, path, profile id, circuit breaker
  - RecommendConfig: recommendation list length
  - SecurityConfig: CORS origins and rate limiting
  - LoggingConfig: zerolog level, format, caller

# Example

	# config.yaml
	server:
	  port: 8080
	storage:
	  backend: file
	  path: /var/lib/shelfmatch
	recommend:
	  limit: 5

	# environment overrides the file
	STORAGE_BACKEND=memory LOG_LEVEL=debug ./shelfmatch

# Validation

LoadWithKoanf validates the merged result with go-playground/validator tags
plus cross-field checks (for example STORAGE_PATH is required unless the
memory backend is selected) and fails fast on invalid configuration.
*/
package config

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

// Package logging provides the process-wide zerolog logger for Shelfmatch.
//
// The global logger is configured once from config.LoggingConfig:
//
//	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
//	logging.Info().Str("backend", backend.Name).Msg("profile store ready")
//
// Request handlers log through Ctx, which adds the request_id set by the
// request ID middleware and the profile_id set by the profile manager:
//
//	logging.Ctx(ctx).Info().Int("item_id", id).Int("rating", r).Msg("rating set")
//
// NewSlogHandler bridges zerolog to log/slog for the supervisor tree.
//
// # Configuration
//
//   - LOG_LEVEL: trace, debug, info, warn, error, disabled (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include file:line (default: false)
package logging

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

// Package storage provides profile.Store implementations.
//
// Backends:
//   - badger: BadgerDB, one key per profile ("profile:<id>"). Default.
//   - file: one JSON file per profile, replaced atomically on save.
//   - memory: process-local map; nothing survives a restart.
//
// Every backend is wrapped in a BreakerStore so a failing disk trips a
// circuit breaker and later calls fail fast with ErrStoreUnavailable instead
// of stalling each API request.
//
// All backends persist the same JSON document, so a profile can be moved
// between backends by copying the value.
package storage

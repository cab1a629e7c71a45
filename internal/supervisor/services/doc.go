// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

// Package services adapts Shelfmatch's long-running components to
// suture.Service so the supervisor tree can start, restart and stop them.
//
// Each wrapper depends on a small interface instead of the concrete type
// (HTTPServer, ContextHub, GarbageCollector) so tests can drive it with
// fakes and the package never imports api, websocket or storage.
package services

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

// Package models defines the JSON shapes served by the HTTP API and pushed
// over the WebSocket.
//
// Every HTTP response is wrapped in APIResponse:
//
//	{
//	  "status": "success",
//	  "data": {...},
//	  "metadata": {"timestamp": "2026-10-19T12:00:00Z", "query_time_ms": 0}
//	}
//
// Errors set status to "error" and fill APIError:
//
//	{
//	  "status": "error",
//	  "error": {"code": "VALIDATION_ERROR", "message": "rating must be at most 5",
//	            "details": {"field": "rating"}},
//	  "metadata": {"timestamp": "2026-10-19T12:00:00Z"}
//	}
//
// The view types (ItemView, ProfileView, RecommendationsView) are flat copies
// of domain values; handlers build them so the domain packages carry no
// transport concerns.
package models

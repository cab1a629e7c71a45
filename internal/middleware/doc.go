// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package middleware provides the HTTP middleware used by the Shelfmatch router.

  - RequestID: reuses an inbound X-Request-ID or generates a UUID, echoes it
    in the response and stores it for logging.Ctx.
  - PrometheusMetrics: records api_requests_total and
    api_request_duration_seconds keyed by the chi route pattern, so
    /api/v1/items/3 and /api/v1/items/7 share one series.
  - Compression: gzip for clients that accept it; WebSocket upgrades pass
    through untouched.

All three are plain func(http.Handler) http.Handler and mount with r.Use.
*/
package middleware

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto at
package init, so importing the package is enough to expose them on /metrics.

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Recommendation Metrics:
  - recommendation_duration_seconds: Time per recommender call (histogram)
    Labels: algorithm (content, collaborative)
  - recommendations_generated_total: Items returned (counter)
  - recommendations_empty_total: Calls with no result (counter)

Profile Metrics:
  - profile_mutations_total: Likes, ratings and resets (counter)
    Labels: operation
  - profile_store_errors_total: Store load/save failures (counter)
    Labels: operation
  - profile_store_breaker_state: 0=closed, 1=half-open, 2=open (gauge)

WebSocket Metrics:
  - websocket_connections: Connected clients (gauge)
  - websocket_messages_sent_total: Messages written to clients (counter)

# Usage

	start := time.Now()
	results := recommender.Recommend(p)
	metrics.RecordRecommendation(metrics.AlgorithmContent, time.Since(start), len(results))

# Thread Safety

All metric operations are thread-safe; the Prometheus client library handles
concurrent access internally.
*/
package metrics

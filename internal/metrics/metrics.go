// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Algorithm label values.
const (
	AlgorithmContent       = "content"
	AlgorithmCollaborative = "collaborative"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "recommendation_duration_seconds",
			Help: "Time to compute one recommendation list",
			// Catalog and panel are tiny; anything above a millisecond is suspicious.
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
		[]string{"algorithm"},
	)

	RecommendationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_generated_total",
			Help: "Total number of recommended items returned",
		},
		[]string{"algorithm"},
	)

	RecommendationsEmpty = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_empty_total",
			Help: "Recommendation calls that returned no items (insufficient data)",
		},
		[]string{"algorithm"},
	)

	// Profile Metrics
	ProfileMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_mutations_total",
			Help: "Total number of profile mutations",
		},
		[]string{"operation"}, // "toggle_like", "set_rating", "reset"
	)

	ProfileStoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_store_errors_total",
			Help: "Total number of profile store failures",
		},
		[]string{"operation"}, // "load", "save"
	)

	ProfileStoreBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "profile_store_breaker_state",
			Help: "Profile store circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages sent",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommender call and the size of its result.
func RecordRecommendation(algorithm string, duration time.Duration, count int) {
	RecommendationDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	if count == 0 {
		RecommendationsEmpty.WithLabelValues(algorithm).Inc()
		return
	}
	RecommendationsGenerated.WithLabelValues(algorithm).Add(float64(count))
}

// RecordProfileMutation counts a profile mutation.
func RecordProfileMutation(operation string) {
	ProfileMutations.WithLabelValues(operation).Inc()
}

// RecordStoreError counts a failed profile store call.
func RecordStoreError(operation string) {
	ProfileStoreErrors.WithLabelValues(operation).Inc()
}

// SetStoreBreakerState publishes the breaker state as a number.
func SetStoreBreakerState(state int) {
	ProfileStoreBreakerState.Set(float64(state))
}

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{"items list", "GET", "/api/v1/items", "200", 2 * time.Millisecond},
		{"toggle like", "POST", "/api/v1/profile/likes/{id}", "200", 5 * time.Millisecond},
		{"bad rating", "PUT", "/api/v1/profile/ratings/{id}", "400", time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
			after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			if after-before != 1 {
				t.Errorf("api_requests_total delta = %v, want 1", after-before)
			}
		})
	}
}

// TestTrackActiveRequest tests concurrent inc/dec leaves the gauge balanced
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("api_active_requests = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	genBefore := testutil.ToFloat64(RecommendationsGenerated.WithLabelValues(AlgorithmContent))
	emptyBefore := testutil.ToFloat64(RecommendationsEmpty.WithLabelValues(AlgorithmContent))

	RecordRecommendation(AlgorithmContent, 50*time.Microsecond, 3)
	RecordRecommendation(AlgorithmContent, 10*time.Microsecond, 0)

	if d := testutil.ToFloat64(RecommendationsGenerated.WithLabelValues(AlgorithmContent)) - genBefore; d != 3 {
		t.Errorf("generated delta = %v, want 3", d)
	}
	if d := testutil.ToFloat64(RecommendationsEmpty.WithLabelValues(AlgorithmContent)) - emptyBefore; d != 1 {
		t.Errorf("empty delta = %v, want 1", d)
	}
}

func TestProfileMetrics(t *testing.T) {
	mutBefore := testutil.ToFloat64(ProfileMutations.WithLabelValues("set_rating"))
	errBefore := testutil.ToFloat64(ProfileStoreErrors.WithLabelValues("save"))

	RecordProfileMutation("set_rating")
	RecordStoreError("save")
	SetStoreBreakerState(2)

	if d := testutil.ToFloat64(ProfileMutations.WithLabelValues("set_rating")) - mutBefore; d != 1 {
		t.Errorf("mutation delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(ProfileStoreErrors.WithLabelValues("save")) - errBefore; d != 1 {
		t.Errorf("store error delta = %v, want 1", d)
	}
	if got := testutil.ToFloat64(ProfileStoreBreakerState); got != 2 {
		t.Errorf("breaker state = %v, want 2", got)
	}
	SetStoreBreakerState(0)
}

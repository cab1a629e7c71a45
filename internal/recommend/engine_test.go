// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/logging"
	"github.com/tomtom215/shelfmatch/internal/metrics"
	"github.com/tomtom215/shelfmatch/internal/panel"
	"github.com/tomtom215/shelfmatch/internal/profile"
)

func newTestEngine(limit int) *Engine {
	return NewEngine(catalog.Default(), panel.Default(), Config{Limit: limit})
}

func TestEngine_Recommend(t *testing.T) {
	e := newTestEngine(5)
	ctx := logging.ContextWithRequestID(context.Background(), "req-1")

	p := profile.New()
	_ = p.SetRating(1, 5)
	_ = p.SetRating(3, 4)

	resp := e.Recommend(ctx, p)

	if len(resp.Content) == 0 {
		t.Error("expected content results")
	}
	if len(resp.Collaborative) != 4 {
		t.Errorf("len(Collaborative) = %d, want 4", len(resp.Collaborative))
	}
	if resp.Metadata.RequestID != "req-1" {
		t.Errorf("RequestID = %q, want req-1", resp.Metadata.RequestID)
	}
	if resp.Metadata.LikedCount != 2 || resp.Metadata.RatedCount != 2 {
		t.Errorf("counts = %d/%d, want 2/2", resp.Metadata.LikedCount, resp.Metadata.RatedCount)
	}
	if resp.Metadata.Limit != 5 {
		t.Errorf("Limit = %d, want 5", resp.Metadata.Limit)
	}
}

func TestEngine_ResetGivesEmptyLists(t *testing.T) {
	e := newTestEngine(5)
	ctx := context.Background()

	p := profile.New()
	p.ToggleLike(2)
	_ = p.SetRating(2, 5)
	_ = p.SetRating(4, 2)
	_ = p.SetRating(5, 4)
	if resp := e.Recommend(ctx, p); len(resp.Content) == 0 || len(resp.Collaborative) == 0 {
		t.Fatalf("precondition: expected non-empty lists, got %d/%d", len(resp.Content), len(resp.Collaborative))
	}

	p.Reset()
	resp := e.Recommend(ctx, p)
	if len(resp.Content) != 0 || len(resp.Collaborative) != 0 {
		t.Errorf("after reset: content=%d collaborative=%d, want 0/0", len(resp.Content), len(resp.Collaborative))
	}
}

func TestEngine_Limit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default when zero", 0, DefaultLimit},
		{"custom", 2, 2},
		{"larger than catalog", 50, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.limit)
			p := profile.New()
			p.ToggleLike(1)
			if got := len(e.Content(context.Background(), p)); got != tt.want {
				t.Errorf("len(Content) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEngine_RecordsMetrics(t *testing.T) {
	e := newTestEngine(5)
	before := testutil.ToFloat64(metrics.RecommendationsEmpty.WithLabelValues(metrics.AlgorithmCollaborative))

	e.Collaborative(context.Background(), profile.New())

	after := testutil.ToFloat64(metrics.RecommendationsEmpty.WithLabelValues(metrics.AlgorithmCollaborative))
	if after-before != 1 {
		t.Errorf("recommendations_empty_total delta = %v, want 1", after-before)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"max", Config{Limit: 50}, false},
		{"zero", Config{Limit: 0}, true},
		{"too large", Config{Limit: 51}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/logging"
	"github.com/tomtom215/shelfmatch/internal/metrics"
	"github.com/tomtom215/shelfmatch/internal/panel"
	"github.com/tomtom215/shelfmatch/internal/profile"
)

// Engine runs both recommenders and records their metrics.
// It holds no derived state between calls and is safe for concurrent use.
type Engine struct {
	catalog       *catalog.Catalog
	content       *ContentRecommender
	collaborative *CollaborativeRecommender
	limit         int
}

// NewEngine creates an engine over the given catalog and panel.
func NewEngine(cat *catalog.Catalog, pnl *panel.Panel, cfg Config) *Engine {
	limit := cfg.limit()
	return &Engine{
		catalog:       cat,
		content:       NewContentRecommender(cat, limit),
		collaborative: NewCollaborativeRecommender(cat, pnl, limit),
		limit:         limit,
	}
}

// Catalog returns the catalog the engine recommends from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Limit returns the list cap applied to both recommenders.
func (e *Engine) Limit() int {
	return e.limit
}

// Content returns the content-based list for p.
func (e *Engine) Content(ctx context.Context, p *profile.Profile) []ContentResult {
	start := time.Now()
	results := e.content.Recommend(p)
	e.record(ctx, metrics.AlgorithmContent, start, len(results))
	return results
}

// Collaborative returns the collaborative list for p.
func (e *Engine) Collaborative(ctx context.Context, p *profile.Profile) []CollaborativeResult {
	start := time.Now()
	results := e.collaborative.Recommend(p)
	e.record(ctx, metrics.AlgorithmCollaborative, start, len(results))
	return results
}

// Similarities exposes the collaborative neighbor set for diagnostics.
func (e *Engine) Similarities(p *profile.Profile) []RaterSimilarity {
	return e.collaborative.Similarities(p)
}

// Recommend computes both lists for p.
func (e *Engine) Recommend(ctx context.Context, p *profile.Profile) Response {
	start := time.Now()

	resp := Response{
		Content:       e.Content(ctx, p),
		Collaborative: e.Collaborative(ctx, p),
	}
	resp.Metadata = ResponseMetadata{
		RequestID:  logging.RequestIDFromContext(ctx),
		LikedCount: len(p.LikedItemIDs()),
		RatedCount: len(p.Ratings()),
		Limit:      e.limit,
		LatencyUS:  time.Since(start).Microseconds(),
		Timestamp:  time.Now(),
	}
	return resp
}

func (e *Engine) record(ctx context.Context, algorithm string, start time.Time, count int) {
	elapsed := time.Since(start)
	metrics.RecordRecommendation(algorithm, elapsed, count)
	logging.Ctx(ctx).Debug().
		Str("algorithm", algorithm).
		Int("count", count).
		Dur("duration", elapsed).
		Msg("recommendations computed")
}

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/shelfmatch/internal/models"
)

// Recommendations handles GET /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	resp := h.engine.Recommend(r.Context(), h.manager.Snapshot())
	respondSuccess(w, http.StatusOK, recommendationsView(resp), start)
}

// ContentRecommendations handles GET /api/v1/recommendations/content.
func (h *Handler) ContentRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	results := h.engine.Content(r.Context(), h.manager.Snapshot())
	respondSuccess(w, http.StatusOK, models.ContentRecommendations{
		Recommendations: contentViews(results),
		Limit:           h.engine.Limit(),
	}, start)
}

// CollaborativeRecommendations handles GET
// /api/v1/recommendations/collaborative. The response also lists the
// positively correlated raters the predictions came from.
func (h *Handler) CollaborativeRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := h.manager.Snapshot()
	results := h.engine.Collaborative(r.Context(), snap)
	respondSuccess(w, http.StatusOK, models.CollaborativeRecommendations{
		Recommendations: collaborativeViews(results),
		Neighbors:       neighborViews(h.engine.Similarities(snap)),
		Limit:           h.engine.Limit(),
	}, start)
}

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/shelfmatch/internal/logging"
	"github.com/tomtom215/shelfmatch/internal/models"
	"github.com/tomtom215/shelfmatch/internal/profile"
	"github.com/tomtom215/shelfmatch/internal/validation"
	ws "github.com/tomtom215/shelfmatch/internal/websocket"
)

// GetProfile handles GET /api/v1/profile.
func (h *Handler) GetProfile(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, h.profileView(h.manager.Snapshot()), start)
}

// ToggleLike handles POST /api/v1/profile/likes/{id}. The item must exist
// in the catalog.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	item, ok := h.requireItem(w, r)
	if !ok {
		return
	}

	snap, err := h.manager.ToggleLike(r.Context(), item.ID)
	h.finishMutation(w, r, start, profile.OpToggleLike, item.ID, snap, err)
}

// SetRating handles PUT /api/v1/profile/ratings/{id} with body
// {"rating": 0..5}. Zero clears the rating.
func (h *Handler) SetRating(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	item, ok := h.requireItem(w, r)
	if !ok {
		return
	}

	var req models.RatingRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil, nil)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	snap, err := h.manager.SetRating(r.Context(), item.ID, *req.Rating)
	h.finishMutation(w, r, start, profile.OpSetRating, item.ID, snap, err)
}

// ResetProfile handles DELETE /api/v1/profile.
func (h *Handler) ResetProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap, err := h.manager.Reset(r.Context())
	h.finishMutation(w, r, start, profile.OpReset, 0, snap, err)
}

// finishMutation recomputes both lists from snap, broadcasts them and writes
// the response. A failed save still changed the in-memory profile, so the
// update is broadcast before the 503 is returned.
func (h *Handler) finishMutation(w http.ResponseWriter, r *http.Request, start time.Time, op string, itemID int, snap *profile.Profile, err error) {
	if err != nil && !errors.Is(err, profile.ErrSaveFailed) {
		respondMutationError(w, r, err)
		return
	}

	result := h.mutationResult(r.Context(), snap)
	h.broadcast(op, itemID, &result)

	if err != nil {
		respondMutationError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("operation", op).
		Int("item_id", itemID).
		Int("content", len(result.Recommendations.Content)).
		Int("collaborative", len(result.Recommendations.Collaborative)).
		Msg("profile updated")
	respondSuccess(w, http.StatusOK, result, start)
}

func (h *Handler) mutationResult(ctx context.Context, snap *profile.Profile) models.MutationResult {
	return models.MutationResult{
		Profile:         h.profileView(snap),
		Recommendations: recommendationsView(h.engine.Recommend(ctx, snap)),
	}
}

func (h *Handler) broadcast(op string, itemID int, result *models.MutationResult) {
	if h.notifier == nil {
		return
	}
	h.notifier.BroadcastRecommendations(&ws.RecommendationsUpdated{
		Operation:       op,
		ItemID:          itemID,
		Profile:         result.Profile,
		Recommendations: result.Recommendations,
	}, op == profile.OpReset)
}

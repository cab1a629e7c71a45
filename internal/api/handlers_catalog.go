// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/logging"
	"github.com/tomtom215/shelfmatch/internal/models"
	"github.com/tomtom215/shelfmatch/internal/validation"
)

// browseQuery is the validated query string of GET /items.
type browseQuery struct {
	Type string `json:"type" validate:"omitempty,oneof=movie book"`
	Tag  string `json:"tag" validate:"omitempty,max=64"`
}

// ListItems handles GET /api/v1/items with optional type and tag filters.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := browseQuery{
		Type: r.URL.Query().Get("type"),
		Tag:  r.URL.Query().Get("tag"),
	}
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	items := h.catalog.Filter(catalog.Filter{Type: catalog.ItemType(q.Type), Tag: q.Tag})
	logging.Ctx(r.Context()).Debug().
		Str("type", q.Type).
		Str("tag", logging.SanitizeValue(q.Tag)).
		Int("matched", len(items)).
		Msg("catalog browsed")

	respondSuccess(w, http.StatusOK, models.ItemList{Items: itemViews(items), Total: len(items)}, start)
}

// GetItem handles GET /api/v1/items/{id}.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	item, ok := h.requireItem(w, r)
	if !ok {
		return
	}
	respondSuccess(w, http.StatusOK, itemView(item), start)
}

// ListTags handles GET /api/v1/tags.
func (h *Handler) ListTags(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, models.TagList{Tags: h.catalog.TagUniverse()}, start)
}

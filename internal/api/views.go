// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/models"
	"github.com/tomtom215/shelfmatch/internal/profile"
	"github.com/tomtom215/shelfmatch/internal/recommend"
)

//nolint:gocritic // hugeParam: views are built once per response
func itemView(item catalog.Item) models.ItemView {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.ItemView{
		ID:          item.ID,
		Title:       item.Title,
		Type:        string(item.Type),
		TypeLabel:   item.Type.Label(),
		Description: item.Description,
		Tags:        tags,
		Glyph:       item.Glyph,
	}
}

func itemViews(items []catalog.Item) []models.ItemView {
	out := make([]models.ItemView, len(items))
	for i := range items {
		out[i] = itemView(items[i])
	}
	return out
}

// profileView lists liked items in like order. Liked ids that are not in
// the catalog are skipped; ratings are reported as stored.
func (h *Handler) profileView(p *profile.Profile) models.ProfileView {
	liked := p.LikedItemIDs()
	view := models.ProfileView{
		ProfileID:  h.manager.ProfileID(),
		LikedItems: make([]models.LikedItemView, 0, len(liked)),
		Ratings:    p.Ratings(),
	}
	if view.Ratings == nil {
		view.Ratings = map[int]int{}
	}
	for _, id := range liked {
		item, ok := h.catalog.ItemByID(id)
		if !ok {
			continue
		}
		view.LikedItems = append(view.LikedItems, models.LikedItemView{
			Item:   itemView(item),
			Rating: p.Rating(id),
		})
	}
	return view
}

func contentViews(results []recommend.ContentResult) []models.ContentRecommendationView {
	out := make([]models.ContentRecommendationView, len(results))
	for i := range results {
		res := &results[i]
		tags := res.MatchingTags
		if tags == nil {
			tags = []string{}
		}
		out[i] = models.ContentRecommendationView{
			Item:         itemView(res.Item),
			Score:        res.Score,
			MatchingTags: tags,
			Reason:       res.Reason,
		}
	}
	return out
}

func collaborativeViews(results []recommend.CollaborativeResult) []models.CollaborativeRecommendationView {
	out := make([]models.CollaborativeRecommendationView, len(results))
	for i := range results {
		res := &results[i]
		out[i] = models.CollaborativeRecommendationView{
			Item:            itemView(res.Item),
			PredictedRating: res.PredictedRating,
			Neighbors:       res.Neighbors,
		}
	}
	return out
}

func neighborViews(sims []recommend.RaterSimilarity) []models.NeighborView {
	out := make([]models.NeighborView, len(sims))
	for i, s := range sims {
		out[i] = models.NeighborView{RaterIndex: s.RaterIndex, Correlation: s.Correlation}
	}
	return out
}

//nolint:gocritic // hugeParam: Response is consumed once
func recommendationsView(resp recommend.Response) models.RecommendationsView {
	return models.RecommendationsView{
		Content:       contentViews(resp.Content),
		Collaborative: collaborativeViews(resp.Collaborative),
		Limit:         resp.Metadata.Limit,
		LatencyUS:     resp.Metadata.LatencyUS,
	}
}

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import (
	"sort"
	"strings"

	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/profile"
)

// Reason texts shown with content recommendations.
const (
	reasonMatchPrefix = "Matches your interest in: "
	reasonFallback    = "Based on your overall preferences"
)

// ContentRecommender ranks items by tag overlap with what the user liked.
type ContentRecommender struct {
	catalog *catalog.Catalog
	limit   int
}

// NewContentRecommender creates a content recommender over cat.
func NewContentRecommender(cat *catalog.Catalog, limit int) *ContentRecommender {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &ContentRecommender{catalog: cat, limit: limit}
}

// UserPreferenceVector sums the tag vectors of every liked item that resolves
// in the catalog. Unresolvable ids are skipped. With no likes the result is
// the zero vector.
func (r *ContentRecommender) UserPreferenceVector(p *profile.Profile) []float64 {
	vec := make([]float64, r.catalog.Dimensions())
	for _, id := range p.LikedItemIDs() {
		item, ok := r.catalog.ItemByID(id)
		if !ok {
			continue
		}
		for i, v := range r.catalog.ItemToVector(item) {
			vec[i] += v
		}
	}
	return vec
}

// Recommend scores every unliked item against the preference vector and
// returns the top results, highest score first. Equal scores keep catalog
// order. Returns an empty slice when the user has no resolvable likes.
func (r *ContentRecommender) Recommend(p *profile.Profile) []ContentResult {
	userVec := r.UserPreferenceVector(p)
	if isZero(userVec) {
		return []ContentResult{}
	}

	universe := r.catalog.TagUniverse()
	items := r.catalog.AllItems()
	results := make([]ContentResult, 0, len(items))

	for i := range items {
		item := items[i]
		if p.IsLiked(item.ID) {
			continue
		}

		itemVec := r.catalog.ItemToVector(item)
		matching := matchingTags(universe, userVec, itemVec)

		results = append(results, ContentResult{
			Item:         item,
			Score:        CosineSimilarity(userVec, itemVec),
			MatchingTags: matching,
			Reason:       contentReason(matching),
		})
	}

	// AllItems is in catalog order, so a stable sort keeps catalog order on ties.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > r.limit {
		results = results[:r.limit]
	}
	return results
}

func matchingTags(universe []string, userVec, itemVec []float64) []string {
	out := make([]string, 0)
	for i, tag := range universe {
		if userVec[i] > 0 && itemVec[i] > 0 {
			out = append(out, tag)
		}
	}
	return out
}

func contentReason(matching []string) string {
	if len(matching) == 0 {
		return reasonFallback
	}
	return reasonMatchPrefix + strings.Join(matching, ", ")
}

func isZero(vec []float64) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/panel"
	"github.com/tomtom215/shelfmatch/internal/profile"
)

// CollaborativeRecommender predicts ratings from the reference panel using
// user-based nearest neighbors with Pearson correlation.
type CollaborativeRecommender struct {
	catalog *catalog.Catalog
	panel   *panel.Panel
	raters  []panel.Rater
	limit   int
}

// NewCollaborativeRecommender creates a collaborative recommender.
func NewCollaborativeRecommender(cat *catalog.Catalog, pnl *panel.Panel, limit int) *CollaborativeRecommender {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &CollaborativeRecommender{
		catalog: cat,
		panel:   pnl,
		raters:  pnl.Raters(),
		limit:   limit,
	}
}

// UserRatingVector aligns the user's ratings to the panel columns.
// Ratings on items the panel does not cover are dropped.
func (r *CollaborativeRecommender) UserRatingVector(p *profile.Profile) []int {
	vec := make([]int, r.panel.Columns())
	for id, rating := range p.Ratings() {
		if col, ok := r.panel.IndexOf(id); ok {
			vec[col] = rating
		}
	}
	return vec
}

// Similarities returns every rater positively correlated with the user,
// strongest first. Equal correlations keep panel row order.
func (r *CollaborativeRecommender) Similarities(p *profile.Profile) []RaterSimilarity {
	return r.similarities(r.UserRatingVector(p))
}

func (r *CollaborativeRecommender) similarities(userVec []int) []RaterSimilarity {
	sims := make([]RaterSimilarity, 0, len(r.raters))
	for _, rater := range r.raters {
		c := PearsonCorrelation(userVec, rater.Ratings)
		if c > 0 {
			sims = append(sims, RaterSimilarity{RaterIndex: rater.Index, Correlation: c})
		}
	}
	sort.SliceStable(sims, func(i, j int) bool {
		return sims[i].Correlation > sims[j].Correlation
	})
	return sims
}

// Recommend predicts ratings for every catalog item the user has not rated.
//
// An item is omitted when the panel has no column for it or when no
// positively correlated rater rated it. Results are highest prediction
// first; ties keep catalog order. No ratings, or no positive neighbors,
// yields an empty slice.
func (r *CollaborativeRecommender) Recommend(p *profile.Profile) []CollaborativeResult {
	userVec := r.UserRatingVector(p)
	if !hasNonZero(userVec) {
		return []CollaborativeResult{}
	}

	sims := r.similarities(userVec)
	if len(sims) == 0 {
		return []CollaborativeResult{}
	}

	items := r.catalog.AllItems()
	results := make([]CollaborativeResult, 0, len(items))

	for i := range items {
		item := items[i]
		if p.Rating(item.ID) != profile.ClearRating {
			continue
		}
		col, ok := r.panel.IndexOf(item.ID)
		if !ok {
			continue
		}

		var num, den float64
		neighbors := 0
		for _, s := range sims {
			rating := r.raters[s.RaterIndex].Ratings[col]
			if rating == panel.Unrated {
				continue
			}
			num += s.Correlation * float64(rating)
			den += math.Abs(s.Correlation)
			neighbors++
		}
		if den == 0 {
			continue
		}

		results = append(results, CollaborativeResult{
			Item:            item,
			PredictedRating: num / den,
			Neighbors:       neighbors,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PredictedRating > results[j].PredictedRating
	})

	if len(results) > r.limit {
		results = results[:r.limit]
	}
	return results
}

func hasNonZero(vec []int) bool {
	for _, v := range vec {
		if v != 0 {
			return true
		}
	}
	return false
}

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import (
	"time"

	"github.com/tomtom215/shelfmatch/internal/catalog"
)

// ContentResult is one content-based recommendation.
type ContentResult struct {
	// Item is the recommended catalog item.
	Item catalog.Item `json:"item"`

	// Score is the cosine similarity to the user's preference vector, in [0,1].
	Score float64 `json:"score"`

	// MatchingTags are the item tags the user has shown interest in,
	// in tag-universe order.
	MatchingTags []string `json:"matching_tags"`

	// Reason is a human-readable explanation.
	Reason string `json:"reason"`
}

// CollaborativeResult is one collaborative recommendation.
type CollaborativeResult struct {
	// Item is the recommended catalog item.
	Item catalog.Item `json:"item"`

	// PredictedRating is the similarity-weighted average of neighbor ratings.
	PredictedRating float64 `json:"predicted_rating"`

	// Neighbors is how many positively correlated raters rated the item.
	Neighbors int `json:"neighbors"`
}

// RaterSimilarity pairs a reference rater with its correlation to the user.
type RaterSimilarity struct {
	// RaterIndex is the panel row.
	RaterIndex int `json:"rater_index"`

	// Correlation is the Pearson correlation, always > 0 when returned by
	// CollaborativeRecommender.Similarities.
	Correlation float64 `json:"correlation"`
}

// Response bundles both lists for one profile snapshot.
type Response struct {
	// Content is the content-based list.
	Content []ContentResult `json:"content"`

	// Collaborative is the collaborative list.
	Collaborative []CollaborativeResult `json:"collaborative"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	// RequestID is the request the lists were computed for, when known.
	RequestID string `json:"request_id,omitempty"`

	// LikedCount is the number of liked items in the snapshot.
	LikedCount int `json:"liked_count"`

	// RatedCount is the number of rated items in the snapshot.
	RatedCount int `json:"rated_count"`

	// Limit is the list cap that was applied.
	Limit int `json:"limit"`

	// LatencyUS is the total compute time in microseconds.
	LatencyUS int64 `json:"latency_us"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

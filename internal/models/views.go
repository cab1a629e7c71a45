// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package models

// ItemView is a catalog item as served to clients.
type ItemView struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	TypeLabel   string   `json:"type_label"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Glyph       string   `json:"glyph"`
}

// ItemList is the catalog browse result.
type ItemList struct {
	Items []ItemView `json:"items"`
	Total int        `json:"total"`
}

// TagList is the tag universe in axis order.
type TagList struct {
	Tags []string `json:"tags"`
}

// LikedItemView is one row of the liked panel: the item and the user's
// rating for it (0 when unrated).
type LikedItemView struct {
	Item   ItemView `json:"item"`
	Rating int      `json:"rating"`
}

// ProfileView is the user's profile. Ratings includes items that are rated
// but no longer liked.
type ProfileView struct {
	ProfileID  string          `json:"profile_id"`
	LikedItems []LikedItemView `json:"liked_items"`
	Ratings    map[int]int     `json:"ratings"`
}

// ContentRecommendationView is one content-based recommendation.
type ContentRecommendationView struct {
	Item         ItemView `json:"item"`
	Score        float64  `json:"score"`
	MatchingTags []string `json:"matching_tags"`
	Reason       string   `json:"reason"`
}

// CollaborativeRecommendationView is one collaborative recommendation.
type CollaborativeRecommendationView struct {
	Item            ItemView `json:"item"`
	PredictedRating float64  `json:"predicted_rating"`
	Neighbors       int      `json:"neighbors"`
}

// RecommendationsView holds both lists. Empty lists serialize as [].
type RecommendationsView struct {
	Content       []ContentRecommendationView       `json:"content"`
	Collaborative []CollaborativeRecommendationView `json:"collaborative"`
	Limit         int                               `json:"limit"`
	LatencyUS     int64                             `json:"latency_us"`
}

// ContentRecommendations is the content-only endpoint result.
type ContentRecommendations struct {
	Recommendations []ContentRecommendationView `json:"recommendations"`
	Limit           int                         `json:"limit"`
}

// NeighborView is one positively correlated reference rater.
type NeighborView struct {
	RaterIndex  int     `json:"rater_index"`
	Correlation float64 `json:"correlation"`
}

// CollaborativeRecommendations is the collaborative-only endpoint result.
// Neighbors lists the raters the predictions were drawn from.
type CollaborativeRecommendations struct {
	Recommendations []CollaborativeRecommendationView `json:"recommendations"`
	Neighbors       []NeighborView                    `json:"neighbors"`
	Limit           int                               `json:"limit"`
}

// MutationResult is returned by every profile mutation: the new profile and
// the lists recomputed from it.
type MutationResult struct {
	Profile         ProfileView         `json:"profile"`
	Recommendations RecommendationsView `json:"recommendations"`
}

// RatingRequest is the body of PUT /api/v1/profile/ratings/{id}.
// A rating of 0 clears the rating.
type RatingRequest struct {
	Rating *int `json:"rating" validate:"required,min=0,max=5"`
}

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package profile

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
)

// Rating bounds. A rating of ClearRating passed to SetRating removes the rating.
const (
	ClearRating = 0
	MinRating   = 1
	MaxRating   = 5
)

var (
	// ErrInvalidRating is returned when a rating is outside [0,5].
	ErrInvalidRating = errors.New("rating must be between 0 and 5")

	// ErrNotFound is returned by a Store when no profile is persisted.
	ErrNotFound = errors.New("profile not found")

	// ErrCorrupt is returned when persisted profile data cannot be decoded.
	ErrCorrupt = errors.New("profile data corrupt")

	// ErrSaveFailed wraps a Store error from a mutation. The mutation itself
	// has been applied in memory.
	ErrSaveFailed = errors.New("profile save failed")
)

// Profile is the local user's liked items and ratings.
//
// Invariant: every rated item is liked at the moment it is rated. Un-liking
// later leaves the rating in place, and clearing a rating never un-likes.
//
// Profile is not safe for concurrent use; Manager serializes access.
type Profile struct {
	liked   []int // insertion order, no duplicates
	ratings map[int]int
}

// New returns an empty profile.
func New() *Profile {
	return &Profile{ratings: make(map[int]int)}
}

// ToggleLike removes itemID from the liked set when present, otherwise
// appends it. Any rating on the item is left untouched. Item ids are not
// checked against a catalog.
func (p *Profile) ToggleLike(itemID int) (liked bool) {
	if i := p.likedIndex(itemID); i >= 0 {
		p.liked = append(p.liked[:i], p.liked[i+1:]...)
		return false
	}
	p.liked = append(p.liked, itemID)
	return true
}

// SetRating stores rating for itemID. ClearRating deletes the rating but keeps
// the like; 1..5 sets the rating and likes the item if it was not already.
func (p *Profile) SetRating(itemID, rating int) error {
	switch {
	case rating == ClearRating:
		delete(p.ratings, itemID)
		return nil
	case rating >= MinRating && rating <= MaxRating:
		p.ratings[itemID] = rating
		if p.likedIndex(itemID) < 0 {
			p.liked = append(p.liked, itemID)
		}
		return nil
	default:
		return fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}
}

// Reset clears likes and ratings.
func (p *Profile) Reset() {
	p.liked = nil
	p.ratings = make(map[int]int)
}

// LikedItemIDs returns liked ids in the order they were liked.
func (p *Profile) LikedItemIDs() []int {
	return append([]int(nil), p.liked...)
}

// Ratings returns a copy of the rating map.
func (p *Profile) Ratings() map[int]int {
	out := make(map[int]int, len(p.ratings))
	for k, v := range p.ratings {
		out[k] = v
	}
	return out
}

// IsLiked reports whether itemID is liked.
func (p *Profile) IsLiked(itemID int) bool {
	return p.likedIndex(itemID) >= 0
}

// Rating returns the rating for itemID, or 0 when unrated.
func (p *Profile) Rating(itemID int) int {
	return p.ratings[itemID]
}

// HasLikes reports whether any item is liked.
func (p *Profile) HasLikes() bool { return len(p.liked) > 0 }

// HasRatings reports whether any item is rated.
func (p *Profile) HasRatings() bool { return len(p.ratings) > 0 }

// Clone returns a deep copy.
func (p *Profile) Clone() *Profile {
	return &Profile{
		liked:   p.LikedItemIDs(),
		ratings: p.Ratings(),
	}
}

// Validate checks data decoded from storage: no duplicate likes and every
// rating within 1..5.
func (p *Profile) Validate() error {
	seen := make(map[int]struct{}, len(p.liked))
	for _, id := range p.liked {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: item %d liked twice", ErrCorrupt, id)
		}
		seen[id] = struct{}{}
	}
	for id, r := range p.ratings {
		if r < MinRating || r > MaxRating {
			return fmt.Errorf("%w: item %d rating %d", ErrCorrupt, id, r)
		}
	}
	return nil
}

func (p *Profile) likedIndex(itemID int) int {
	for i, id := range p.liked {
		if id == itemID {
			return i
		}
	}
	return -1
}

// wireProfile is the persisted shape: {"likedItems":[...],"ratings":{"<id>":n}}.
type wireProfile struct {
	LikedItems []int          `json:"likedItems"`
	Ratings    map[string]int `json:"ratings"`
}

// MarshalJSON implements json.Marshaler.
func (p *Profile) MarshalJSON() ([]byte, error) {
	w := wireProfile{
		LikedItems: p.LikedItemIDs(),
		Ratings:    make(map[string]int, len(p.ratings)),
	}
	if w.LikedItems == nil {
		w.LikedItems = []int{}
	}
	for id, r := range p.ratings {
		w.Ratings[strconv.Itoa(id)] = r
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler. Rating keys that are not
// integers make the payload corrupt.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var w wireProfile
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	ratings := make(map[int]int, len(w.Ratings))
	for key, r := range w.Ratings {
		id, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("%w: rating key %q", ErrCorrupt, key)
		}
		ratings[id] = r
	}

	p.liked = append([]int(nil), w.LikedItems...)
	p.ratings = ratings
	return nil
}

// RatedItemIDs returns the rated ids in ascending order.
func (p *Profile) RatedItemIDs() []int {
	ids := make([]int, 0, len(p.ratings))
	for id := range p.ratings {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

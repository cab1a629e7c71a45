// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package catalog

// ItemType classifies catalog items.
type ItemType string

const (
	// TypeMovie is a film.
	TypeMovie ItemType = "movie"
	// TypeBook is a book.
	TypeBook ItemType = "book"
)

// Label returns the display label used by clients ("🎬 Movie", "📚 Book").
func (t ItemType) Label() string {
	switch t {
	case TypeMovie:
		return "🎬 Movie"
	case TypeBook:
		return "📚 Book"
	default:
		return string(t)
	}
}

// Item is a single catalog entry. Identity is ID.
type Item struct {
	// ID is the unique positive item identifier.
	ID int `json:"id" validate:"gt=0"`

	// Title is the display title.
	Title string `json:"title" validate:"required"`

	// Type is movie or book.
	Type ItemType `json:"type" validate:"required,oneof=movie book"`

	// Description is a one-line synopsis.
	Description string `json:"description"`

	// Tags are the genres the item belongs to.
	Tags []string `json:"tags" validate:"required,min=1,unique,dive,required"`

	// Glyph is the icon shown on item cards.
	Glyph string `json:"glyph"`
}

// HasTag reports whether the item carries tag.
func (i *Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (i *Item) clone() Item {
	out := *i
	out.Tags = append([]string(nil), i.Tags...)
	return out
}

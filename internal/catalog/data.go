// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package catalog

// defaultItems is the compiled-in catalog. Order matters: it fixes both the
// tag universe axes and the ranking tie-break.
var defaultItems = []Item{
	{
		ID:          1,
		Title:       "The Matrix",
		Type:        TypeMovie,
		Description: "A computer hacker learns from mysterious rebels about the true nature of his reality.",
		Tags:        []string{"sci-fi", "action", "thriller"},
		Glyph:       "🎬",
	},
	{
		ID:          2,
		Title:       "The Lord of the Rings",
		Type:        TypeBook,
		Description: "A meek Hobbit and eight companions set out to destroy the One Ring.",
		Tags:        []string{"fantasy", "adventure", "drama"},
		Glyph:       "📚",
	},
	{
		ID:          3,
		Title:       "Inception",
		Type:        TypeMovie,
		Description: "A thief who steals corporate secrets through dream-sharing technology.",
		Tags:        []string{"sci-fi", "action", "thriller", "mystery"},
		Glyph:       "🎬",
	},
	{
		ID:          4,
		Title:       "Pride and Prejudice",
		Type:        TypeBook,
		Description: "Story about the turbulent relationship between Elizabeth Bennet and Mr. Darcy.",
		Tags:        []string{"romance", "drama", "classic"},
		Glyph:       "📚",
	},
	{
		ID:          5,
		Title:       "Interstellar",
		Type:        TypeMovie,
		Description: "A team of explorers travel through a wormhole in space to ensure humanity's survival.",
		Tags:        []string{"sci-fi", "drama", "adventure"},
		Glyph:       "🎬",
	},
	{
		ID:          6,
		Title:       "Harry Potter and the Sorcerer's Stone",
		Type:        TypeBook,
		Description: "A young boy discovers he is a wizard and attends a magical school.",
		Tags:        []string{"fantasy", "adventure", "mystery"},
		Glyph:       "📚",
	},
	{
		ID:          7,
		Title:       "The Dark Knight",
		Type:        TypeMovie,
		Description: "Batman faces the Joker, a criminal mastermind who seeks to undermine order in Gotham.",
		Tags:        []string{"action", "crime", "drama", "thriller"},
		Glyph:       "🎬",
	},
	{
		ID:          8,
		Title:       "The Hitchhiker's Guide to the Galaxy",
		Type:        TypeBook,
		Description: "Miserable Earthling Arthur Dent is rescued by his friend Ford Prefect.",
		Tags:        []string{"sci-fi", "comedy", "adventure"},
		Glyph:       "📚",
	},
	{
		ID:          9,
		Title:       "hum aapke hai kon",
		Type:        TypeMovie,
		Description: "romance movie",
		Tags:        []string{"romance", "drama", "comedy", "music"},
		Glyph:       "🎬",
	},
	{
		ID:          10,
		Title:       "The Da Vinci Code",
		Type:        TypeBook,
		Description: "A murder in the Louvre Museum leads to a battle between secret societies.",
		Tags:        []string{"mystery", "thriller", "adventure"},
		Glyph:       "📚",
	},
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	c, err := New(defaultItems)
	if err != nil {
		// Static data; a failure here is a programming error.
		panic("catalog: invalid default items: " + err.Error())
	}
	return c
}

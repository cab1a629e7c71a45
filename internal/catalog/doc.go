// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

// Package catalog holds the static set of movies and books that Shelfmatch
// recommends from.
//
// A Catalog is built once at startup and never mutated. Building it derives
// the tag universe: the ordered list of every distinct tag, in first-seen
// order. The tag universe defines the axes of every tag vector, so item
// vectors and the user preference vector share one coordinate space and can
// be compared with cosine similarity.
//
// # Usage
//
//	cat := catalog.Default()
//	item, ok := cat.ItemByID(3)
//	vec := cat.ItemToVector(item) // len(vec) == cat.Dimensions()
//
//	books := cat.Filter(catalog.Filter{Type: catalog.TypeBook, Tag: "fantasy"})
package catalog

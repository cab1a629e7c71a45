// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

// Package profile models the local user's taste: an insertion-ordered set of
// liked item ids and a map of 1..5 star ratings.
//
// Profile is a plain value with no persistence or locking. Manager wraps one
// profile with a mutex and an injected Store: every mutation is applied and
// then saved, and callers receive a deep-copied snapshot to feed into the
// recommenders. The profile never triggers recomputation itself.
//
// Persisted form:
//
//	{"likedItems":[1,3],"ratings":{"1":5,"3":4}}
package profile

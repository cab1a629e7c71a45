// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

// Package recommend turns a user profile into two ranked recommendation lists.
//
// # Architecture
//
// Two independent recommenders run over the same immutable inputs:
//
//   - Content-based: the user's liked items are summed into a preference
//     vector over the catalog's tag universe, and every unliked item is scored
//     by cosine similarity against it.
//   - Collaborative: the user's ratings are correlated (Pearson, common items
//     only) against a fixed panel of reference raters, and unrated items get
//     a rating predicted from positively correlated raters.
//
// # Design Principles
//
//   - Pure: recommenders are functions of (Catalog, Panel, Profile) and keep
//     no cache; every call recomputes from scratch.
//   - Deterministic: ties are broken by catalog order (items) and by panel
//     row order (raters), so identical inputs give identical lists.
//   - Soft failure: degenerate math resolves to 0 and insufficient data
//     resolves to an empty list, never to an error.
//
// # Usage
//
//	engine := recommend.NewEngine(catalog.Default(), panel.Default(), recommend.DefaultConfig())
//	resp := engine.Recommend(ctx, manager.Snapshot())
//	for _, r := range resp.Content {
//	    fmt.Println(r.Item.Title, r.Score, r.Reason)
//	}
//
// # Thread Safety
//
// Engine and both recommenders hold only immutable state and are safe for
// concurrent use. The *profile.Profile passed in must not be mutated during a
// call; profile.Manager hands out snapshots for this reason.
package recommend

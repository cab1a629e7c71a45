// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package api serves the Shelfmatch HTTP API.

Routes (all under /api/v1 unless noted):

	GET    /health/live                  liveness
	GET    /health/ready                 readiness (catalog, profile store)
	GET    /items?type=&tag=             browse the catalog
	GET    /items/{id}                   one item
	GET    /tags                         tag universe in axis order
	GET    /profile                      liked items with ratings, plus all ratings
	POST   /profile/likes/{id}           toggle like
	PUT    /profile/ratings/{id}         {"rating":0..5}; 0 clears
	DELETE /profile                      reset
	GET    /recommendations              both lists
	GET    /recommendations/content      content list
	GET    /recommendations/collaborative collaborative list and neighbors
	GET    /ws                           WebSocket updates
	GET    /metrics                      Prometheus (root path)

Every mutation returns the new profile and both recomputed lists, and the
same payload is broadcast to WebSocket clients.

Error mapping:

  - 400 VALIDATION_ERROR: bad path id, bad query, bad body, rating out of range
  - 404 ITEM_NOT_FOUND: id is not in the catalog
  - 503 STORE_UNAVAILABLE: the profile could not be persisted or the store
    breaker is open; the in-memory change still stands
  - 500 INTERNAL_ERROR: anything else

Middleware, outermost first: request ID, real IP, panic recovery, CORS,
Prometheus, rate limiting (per IP; health probes exempt), gzip (not /ws).
Unknown routes and methods get the JSON envelope with NOT_FOUND and
METHOD_NOT_ALLOWED; rejected requests get 429 RATE_LIMIT_EXCEEDED.
*/
package api

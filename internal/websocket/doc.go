// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package websocket pushes live recommendation updates to connected browsers.

A Hub owns the set of connected clients and fans out every broadcast to
all of them. Each Client runs a read pump (answers application-level ping
with pong, enforces the pong deadline) and a write pump (drains the
client's send queue, sends protocol pings).

Message types:

  - recommendations_updated: sent after a like or rating change; data is
    RecommendationsUpdated with the new profile and both lists
  - profile_reset: sent after the profile is cleared; same payload shape
  - ping / pong: client keepalive

Broadcasts never block the caller. When the hub queue is full the message
is dropped and logged; when one client's queue is full that client is
disconnected.

The hub runs under the supervisor tree:

	hub := websocket.NewHub()
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
*/
package websocket

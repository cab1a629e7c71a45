// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/config"
	"github.com/tomtom215/shelfmatch/internal/profile"
	"github.com/tomtom215/shelfmatch/internal/recommend"
	ws "github.com/tomtom215/shelfmatch/internal/websocket"
)

// Broadcaster receives profile change notifications. Satisfied by *ws.Hub.
type Broadcaster interface {
	BroadcastRecommendations(update *ws.RecommendationsUpdated, reset bool)
}

// Pinger reports whether the profile store is reachable. Satisfied by
// *storage.Backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the dependencies shared by every endpoint.
type Handler struct {
	catalog   *catalog.Catalog
	manager   *profile.Manager
	engine    *recommend.Engine
	store     Pinger
	wsHub     *ws.Hub
	notifier  Broadcaster
	config    *config.Config
	startTime time.Time
}

// NewHandler wires the handler. hub may be nil, in which case mutations are
// not broadcast and /ws answers 503.
func NewHandler(engine *recommend.Engine, manager *profile.Manager, store Pinger, hub *ws.Hub, cfg *config.Config) *Handler {
	h := &Handler{
		catalog:   engine.Catalog(),
		manager:   manager,
		engine:    engine,
		store:     store,
		wsHub:     hub,
		config:    cfg,
		startTime: time.Now(),
	}
	if hub != nil {
		h.notifier = hub
	}
	return h
}

// SetBroadcaster replaces the notifier. Tests use it to observe broadcasts.
func (h *Handler) SetBroadcaster(b Broadcaster) {
	h.notifier = b
}

// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/shelfmatch/internal/middleware"
	"github.com/tomtom215/shelfmatch/internal/models"
)

// Router binds handlers to routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses the default middleware config.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi builds the full route tree.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, models.ErrCodeNotFound, "route not found", nil, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed, "method not allowed", nil, nil)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)

		// Probes are not rate limited.
		r.Get("/health/live", h.HealthLive)
		r.Get("/health/ready", h.HealthReady)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())

			r.Get("/ws", h.WebSocket)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Compression)

				r.Get("/items", h.ListItems)
				r.Get("/items/{id}", h.GetItem)
				r.Get("/tags", h.ListTags)

				r.Get("/profile", h.GetProfile)
				r.Delete("/profile", h.ResetProfile)
				r.Post("/profile/likes/{id}", h.ToggleLike)
				r.Put("/profile/ratings/{id}", h.SetRating)

				r.Get("/recommendations", h.Recommendations)
				r.Get("/recommendations/content", h.ContentRecommendations)
				r.Get("/recommendations/collaborative", h.CollaborativeRecommendations)
			})
		})
	})

	return r
}

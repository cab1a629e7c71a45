// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/shelfmatch/internal/models"
)

// Readiness check names.
const (
	checkCatalog = "catalog"
	checkStore   = "profile_store"
	checkOK      = "ok"
)

// HealthLive answers as long as the process is serving HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, models.HealthStatus{
		Status: "alive",
		Uptime: time.Since(h.startTime).Seconds(),
	}, start)
}

// HealthReady reports 200 when the catalog is loaded and the profile store
// answers a ping, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	checks := map[string]string{
		checkCatalog: checkOK,
		checkStore:   checkOK,
	}
	ready := true

	if h.catalog == nil || h.catalog.Len() == 0 {
		checks[checkCatalog] = "empty"
		ready = false
	}
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			checks[checkStore] = err.Error()
			ready = false
		}
	}

	status := http.StatusOK
	health := models.HealthStatus{Status: "ready", Checks: checks, Uptime: time.Since(h.startTime).Seconds()}
	if !ready {
		status = http.StatusServiceUnavailable
		health.Status = "not_ready"
	}
	respondSuccess(w, status, health, start)
}

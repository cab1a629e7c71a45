// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/shelfmatch/internal/config"
	"github.com/tomtom215/shelfmatch/internal/metrics"
	"github.com/tomtom215/shelfmatch/internal/models"
)

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	t.Run("nil uses defaults", func(t *testing.T) {
		cfg := ChiMiddlewareConfigFromSecurity(nil)
		if cfg.RateLimitRequests != 100 || cfg.RateLimitWindow != time.Minute {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		cfg := ChiMiddlewareConfigFromSecurity(&config.SecurityConfig{
			CORSOrigins:       []string{"https://shelf.example"},
			RateLimitReqs:     7,
			RateLimitWindow:   10 * time.Second,
			RateLimitDisabled: true,
		})
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://shelf.example" {
			t.Errorf("origins = %v", cfg.CORSAllowedOrigins)
		}
		if cfg.RateLimitRequests != 7 || cfg.RateLimitWindow != 10*time.Second || !cfg.RateLimitDisabled {
			t.Errorf("cfg = %+v", cfg)
		}
	})
}

func TestRateLimit_RejectsWithJSON(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	_, router := newTestRouter(t, cfg)

	const path = "/api/v1/tags"
	before := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues(path))

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "203.0.113.9:5000"
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request code = %d, want 429", last.Code)
	}
	if e := decodeEnvelope(t, last); e.Error == nil || e.Error.Code != models.ErrCodeRateLimited {
		t.Errorf("error = %+v", e.Error)
	}
	if last.Header().Get("Retry-After") != "60" {
		t.Errorf("Retry-After = %q", last.Header().Get("Retry-After"))
	}
	if got := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues(path)) - before; got != 1 {
		t.Errorf("rate limit hits delta = %v, want 1", got)
	}
}

func TestRateLimit_HealthExempt(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	_, router := newTestRouter(t, cfg)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
		req.RemoteAddr = "203.0.113.10:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d code = %d", i, rec.Code)
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://shelf.example"}
	cfg.RateLimitDisabled = true
	_, router := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/profile/ratings/1", nil)
	req.Header.Set("Origin", "https://shelf.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://shelf.example" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

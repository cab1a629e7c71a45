// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("GenerateRequestID() = %q, not a UUID: %v", id, err)
	}
	if id == GenerateRequestID() {
		t.Error("GenerateRequestID() returned the same id twice")
	}
}

func TestContextIDs(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q", got)
	}
	if got := ProfileIDFromContext(ctx); got != "" {
		t.Errorf("ProfileIDFromContext(empty) = %q", got)
	}

	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithProfileID(ctx, "local")

	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want req-1", got)
	}
	if got := ProfileIDFromContext(ctx); got != "local" {
		t.Errorf("ProfileIDFromContext() = %q, want local", got)
	}
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-42")
	ctx = ContextWithProfileID(ctx, "local")

	Ctx(ctx).Info().Int("item_id", 3).Msg("like toggled")

	out := buf.String()
	for _, want := range []string{"\"request_id\":\"req-42\"", "\"profile_id\":\"local\"", "\"item_id\":3", "like toggled"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestCtx_NoIDs(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))

	Ctx(ctx).Info().Msg("plain")

	out := buf.String()
	if strings.Contains(out, "request_id") || strings.Contains(out, "profile_id") {
		t.Errorf("unexpected id fields: %s", out)
	}
}

func TestLoggerFromContext_FallsBackToGlobal(t *testing.T) {
	buf := captureGlobal(t, "info")

	logger := LoggerFromContext(context.Background())
	logger.Info().Msg("global entry")

	if !strings.Contains(buf.String(), "global entry") {
		t.Errorf("global logger not used: %s", buf.String())
	}
}

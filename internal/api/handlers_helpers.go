// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/logging"
	"github.com/tomtom215/shelfmatch/internal/models"
	"github.com/tomtom215/shelfmatch/internal/profile"
	"github.com/tomtom215/shelfmatch/internal/storage"
	"github.com/tomtom215/shelfmatch/internal/validation"
)

// maxBodyBytes bounds request bodies; the only body is a rating.
const maxBodyBytes = 1 << 10

// respondJSON writes response with status.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Debug().Err(err).Msg("failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope. start is when the
// handler began work and feeds query_time_ms.
func respondSuccess(w http.ResponseWriter, status int, data interface{}, start time.Time) {
	respondJSON(w, status, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondError writes an error envelope. err, when set, is logged with the
// request context and never sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Err(err).Str("code", code).Str("path", logging.SanitizeValue(r.URL.Path)).Msg("request failed")
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   models.StatusError,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondValidationError writes a 400 built from validator output.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
}

// itemIDParam parses and validates the {id} path parameter.
func itemIDParam(r *http.Request) (int, *validation.RequestValidationError) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		if verr := validation.ValidateVar("id", raw, "number"); verr != nil {
			return 0, verr
		}
		// digits only but out of int range
		return 0, validation.ValidateVar("id", 0, "gt=0")
	}
	if verr := validation.ValidateVar("id", id, "gt=0"); verr != nil {
		return 0, verr
	}
	return id, nil
}

// requireItem resolves id against the catalog, writing the error response
// when it fails.
func (h *Handler) requireItem(w http.ResponseWriter, r *http.Request) (catalog.Item, bool) {
	id, verr := itemIDParam(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return catalog.Item{}, false
	}

	item, err := h.catalog.Lookup(id)
	if err != nil {
		respondError(w, r, http.StatusNotFound, models.ErrCodeItemNotFound,
			fmt.Sprintf("item %d not found", id), map[string]interface{}{"id": id}, nil)
		return catalog.Item{}, false
	}
	return item, true
}

// decodeJSONBody decodes a small JSON body into dst, rejecting unknown fields.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return errors.New("request body too large")
	}
	if len(body) == 0 {
		return errors.New("request body is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// respondMutationError maps a profile.Manager error to a response.
func respondMutationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, profile.ErrInvalidRating):
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(),
			map[string]interface{}{"field": "rating"}, nil)
	case errors.Is(err, storage.ErrStoreUnavailable), errors.Is(err, profile.ErrSaveFailed):
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeStoreUnavailable,
			"profile change applied but could not be saved", nil, err)
	default:
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternal,
			"internal error", nil, err)
	}
}

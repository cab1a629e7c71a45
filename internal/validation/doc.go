// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once (struct metadata is cached by the
// library) and shared by catalog item checks, configuration checks, and API
// request checks. Failures come back as *RequestValidationError, which
// converts to the API's VALIDATION_ERROR envelope.
//
// # Quick Start
//
//	type ratingRequest struct {
//	    Rating *int `json:"rating" validate:"required,min=0,max=5"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// Field names in messages follow the json tag ("rating must be at most 5").
package validation

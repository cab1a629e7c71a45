// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package recommend

import (
	"fmt"

	"github.com/tomtom215/shelfmatch/internal/validation"
)

// DefaultLimit is the maximum list length when Config.Limit is unset.
const DefaultLimit = 5

// Config holds recommender settings.
type Config struct {
	// Limit caps each recommendation list.
	// Range: 1-50. Default: 5.
	Limit int `json:"limit" validate:"min=1,max=50"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Limit: DefaultLimit}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if verr := validation.ValidateStruct(&c); verr != nil {
		return fmt.Errorf("invalid recommend config: %w", verr)
	}
	return nil
}

func (c Config) limit() int {
	if c.Limit <= 0 {
		return DefaultLimit
	}
	return c.Limit
}

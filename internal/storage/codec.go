// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package storage

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shelfmatch/internal/profile"
)

func encodeProfile(p *profile.Profile) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	return data, nil
}

// decodeProfile always reports undecodable data as profile.ErrCorrupt so the
// manager can fall back to an empty profile.
func decodeProfile(data []byte) (*profile.Profile, error) {
	p := profile.New()
	if err := json.Unmarshal(data, p); err != nil {
		if errors.Is(err, profile.ErrCorrupt) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", profile.ErrCorrupt, err)
	}
	return p, nil
}

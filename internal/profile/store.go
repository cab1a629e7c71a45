// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package profile

import "context"

// Store persists profiles. Implementations live in internal/storage.
//
// Load returns ErrNotFound when nothing is stored for profileID, and an error
// wrapping ErrCorrupt when stored data cannot be decoded.
type Store interface {
	Load(ctx context.Context, profileID string) (*Profile, error)
	Save(ctx context.Context, profileID string, p *Profile) error
}

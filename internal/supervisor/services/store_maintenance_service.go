// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package services

import (
	"context"
	"time"

	"github.com/tomtom215/shelfmatch/internal/logging"
)

// GarbageCollector is satisfied by *storage.Backend.
type GarbageCollector interface {
	CollectGarbage() error
}

// StoreMaintenanceService periodically reclaims profile store space. A
// failed run is logged and retried on the next tick; the service itself
// only stops on cancellation.
type StoreMaintenanceService struct {
	gc       GarbageCollector
	interval time.Duration
	name     string
}

// NewStoreMaintenanceService runs gc every interval. A non-positive
// interval disables collection; Serve then just waits for shutdown.
func NewStoreMaintenanceService(gc GarbageCollector, interval time.Duration) *StoreMaintenanceService {
	return &StoreMaintenanceService{gc: gc, interval: interval, name: "store-maintenance"}
}

// Serve implements suture.Service.
func (s *StoreMaintenanceService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.gc.CollectGarbage(); err != nil {
				logging.Warn().Err(err).Msg("profile store garbage collection failed")
				continue
			}
			logging.Debug().Dur("took", time.Since(start)).Msg("profile store garbage collection done")
		}
	}
}

// String names the service in supervisor logs.
func (s *StoreMaintenanceService) String() string {
	return s.name
}

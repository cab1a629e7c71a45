// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

// Package main is the Shelfmatch server.
//
// Startup order:
//
//  1. Configuration (koanf: defaults, then config.yaml, then environment)
//  2. Logging
//  3. Profile store (BadgerDB, JSON file or memory, behind a circuit breaker)
//  4. Profile manager, loading the stored profile
//  5. Recommendation engine over the built-in catalog and rating panel
//  6. WebSocket hub and HTTP router
//  7. Supervisor tree (store maintenance, hub, HTTP server)
//
// SIGINT and SIGTERM cancel the tree; the HTTP server drains within
// SHUTDOWN_TIMEOUT and the store is closed last.
//
// # Example
//
//	export STORAGE_BACKEND=badger
//	export STORAGE_PATH=/var/lib/shelfmatch
//	export LOG_FORMAT=console
//	./shelfmatch
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/shelfmatch/internal/api"
	"github.com/tomtom215/shelfmatch/internal/catalog"
	"github.com/tomtom215/shelfmatch/internal/config"
	"github.com/tomtom215/shelfmatch/internal/logging"
	"github.com/tomtom215/shelfmatch/internal/panel"
	"github.com/tomtom215/shelfmatch/internal/profile"
	"github.com/tomtom215/shelfmatch/internal/recommend"
	"github.com/tomtom215/shelfmatch/internal/storage"
	"github.com/tomtom215/shelfmatch/internal/supervisor"
	"github.com/tomtom215/shelfmatch/internal/supervisor/services"
	ws "github.com/tomtom215/shelfmatch/internal/websocket"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("shelfmatch exited with error")
	}
	logging.Info().Msg("shelfmatch stopped")
}

func run() error {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("storage_backend", cfg.Storage.Backend).
		Int("limit", cfg.Recommend.Limit).
		Msg("configuration loaded")

	backend, err := storage.New(&cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logging.Error().Err(err).Msg("error closing profile store")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := profile.NewManager(backend.Store, cfg.Storage.ProfileID)
	if err := manager.Open(ctx); err != nil {
		// The manager already fell back to an empty profile; saves retry
		// once the store recovers.
		logging.Warn().Err(err).Msg("profile store unavailable at startup, serving empty profile")
	}

	engine := recommend.NewEngine(catalog.Default(), panel.Default(), recommend.Config{Limit: cfg.Recommend.Limit})

	hub := ws.NewHub()
	handler := api.NewHandler(engine, manager, backend, hub, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}
	tree.AddStorageService(services.NewStoreMaintenanceService(backend, cfg.Storage.GCInterval))
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Msg("starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
	case treeErr = <-errCh:
	}
	cancel()
	for err := range errCh {
		if treeErr == nil {
			treeErr = err
		}
	}
	tree.LogUnstopped()

	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		return treeErr
	}
	return nil
}

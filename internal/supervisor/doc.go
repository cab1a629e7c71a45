// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package supervisor runs Shelfmatch's long-lived services under a suture v4
supervisor tree.

The tree has three layers so a failing layer restarts without taking the
others down:

	shelfmatch
	├── storage-layer
	│   └── StoreMaintenanceService (BadgerDB value-log GC)
	├── messaging-layer
	│   └── WebSocketHubService
	└── api-layer
	    └── HTTPServerService

Supervisor events (start, failure, backoff, restart) are logged through
sutureslog on a slog.Logger that forwards to zerolog; see
logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddStorageService(services.NewStoreMaintenanceService(backend, cfg.Storage.GCInterval))
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh
*/
package supervisor

// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

/*
Package supervisor runs the server's long-lived services under a suture v4
tree.

	RootSupervisor ("salesboard")
	├── APISupervisor ("api-layer")
	│   └── HTTPServerService
	└── BackgroundSupervisor ("background-layer")
	    └── BackendProbeService (if backend.probe_interval > 0)

Crashed services restart with suture's failure threshold, decay and backoff.
Supervisor events are logged through sutureslog on top of the zerolog-backed
slog.Logger from logging.NewSlogLogger.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFrom(cfg))
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}

See Also:

  - internal/supervisor/services: suture.Service adapters
  - github.com/thejerf/suture/v4
*/
package supervisor

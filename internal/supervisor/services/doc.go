// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

/*
Package services adapts Salesboard's long-running components to
suture.Service.

  - HTTPServerService: *http.Server with graceful shutdown
  - BackendProbeService: periodic GET /health against the analytics backend,
    exported as the salesboard_backend_reachable gauge

Each service returns ctx.Err() when its context is canceled, so the
supervisor can tell a shutdown from a crash. Each implements fmt.Stringer for
supervisor logs.
*/
package services

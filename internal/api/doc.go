// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

/*
Package api provides the HTTP layer of the Salesboard frontend server.

The server does three things: it serves the dashboard's static assets, it
answers its own health checks, and it redirects every /api/* request to the
analytics backend with HTTP 307 so the browser repeats the request, method and
body included, against the backend.

Routes:

  - GET /health: frontend status
  - GET /health/live: liveness probe with process uptime
  - /api/*: 307 redirect to <backend.url><rest-of-path>?<query>
  - GET /metrics: Prometheus exposition (optional)
  - GET /, GET /*: static files from server.static_dir
  - anything else: 404 {"error":"Route not found"}

Middleware stack (outermost first):

  - request ID with logging context (internal/middleware)
  - chi RealIP and Recoverer
  - CORS (go-chi/cors)
  - Prometheus request metrics (internal/middleware)
  - per-IP rate limiting on /api/* (go-chi/httprate)

Usage Example:

	router := api.NewRouter(cfg)
	srv := &http.Server{Addr: ":8080", Handler: router.SetupChi()}

Thread Safety:

Handlers hold only immutable configuration and are safe for concurrent use.
*/
package api

// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

/*
Package main is the Salesboard frontend server.

It serves the dashboard's static assets, answers health checks, and
redirects /api/* to the analytics backend. Business logic lives in the
backend; this process holds no data.

# Supervisor Tree

	RootSupervisor ("salesboard")
	├── APISupervisor ("api-layer")
	│   └── HTTP Server
	└── BackgroundSupervisor ("background-layer")
	    └── Backend probe (when BACKEND_PROBE_INTERVAL > 0)

# Routes

	GET  /health        {"status":"OK","message":"Salesboard frontend is running"}
	GET  /health/live   liveness with uptime
	ANY  /api/*         307 to BACKEND_URL/*, query preserved
	GET  /metrics       Prometheus (METRICS_ENABLED=true)
	GET  /*             static files, "/" serves index.html

Unknown routes get 404 {"error":"Route not found"}.

# Configuration

Koanf v2 layers built-in defaults, an optional config.yaml (CONFIG_PATH), and
environment variables. The common ones:

	PORT=8080
	STATIC_DIR=./public
	BACKEND_URL=http://localhost:8001
	BACKEND_PROBE_INTERVAL=1m
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signals

SIGINT and SIGTERM cancel the root context; the HTTP server drains in-flight
requests for up to SHUTDOWN_TIMEOUT.
*/
package main

// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/salesboard/internal/config"
	"github.com/tomtom215/salesboard/internal/middleware"
)

// Router wires the handlers and middleware into a chi router.
type Router struct {
	handler        *Handler
	chiMiddleware  *ChiMiddleware
	metricsEnabled bool
}

// NewRouter builds a Router from the server, backend, security and metrics
// sections of cfg.
func NewRouter(cfg *config.Config) *Router {
	staticDirUsable(cfg.Server.StaticDir)
	return &Router{
		handler:        NewHandler(cfg.Backend.URL, cfg.Server.StaticDir),
		chiMiddleware:  NewChiMiddleware(ChiMiddlewareConfigFrom(cfg.Security)),
		metricsEnabled: cfg.Metrics.Enabled,
	}
}

// Handler returns the route handlers.
func (router *Router) Handler() *Handler {
	return router.handler
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(respondNotFound)
	r.MethodNotAllowed(respondNotFound)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
	})

	// Every method is redirected; 307 keeps POST /api/filtered-data a POST.
	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.HandleFunc("/*", router.handler.APIRedirect)
		r.HandleFunc("/", router.handler.APIRedirect)
	})

	if router.metricsEnabled {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	r.Get("/", router.handler.ServeStatic)
	r.Get("/*", router.handler.ServeStatic)

	return r
}

// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

// Package metrics holds the Prometheus collectors for the server, the
// analytics client and the dashboard session.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Static server
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesboard_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salesboard_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "salesboard_http_active_requests",
			Help: "Number of in-flight HTTP requests",
		},
	)

	APIRedirectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "salesboard_api_redirects_total",
			Help: "Total number of /api/* requests redirected to the backend",
		},
	)

	BackendReachable = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "salesboard_backend_reachable",
			Help: "1 if the last backend health probe succeeded, 0 otherwise",
		},
	)
)

// Analytics client
var (
	ClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesboard_client_requests_total",
			Help: "Total number of analytics API calls by outcome",
		},
		[]string{"endpoint", "status"},
	)

	ClientRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salesboard_client_request_duration_seconds",
			Help:    "Analytics API call latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "salesboard_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesboard_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// Dashboard session
var (
	ChartsLive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "salesboard_charts_live",
			Help: "Number of live chart handles per widget kind",
		},
		[]string{"kind"},
	)

	ChartRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesboard_chart_renders_total",
			Help: "Total number of chart renders per widget kind",
		},
		[]string{"kind"},
	)

	DashboardLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesboard_dashboard_loads_total",
			Help: "Dashboard loads by mode (baseline, filtered) and status",
		},
		[]string{"mode", "status"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesboard_notifications_total",
			Help: "User-visible notifications posted by level",
		},
		[]string{"level"},
	)

	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "salesboard_app_info",
			Help: "Build information",
		},
		[]string{"version"},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments (inc=true) or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}

// RecordClientRequest records one analytics API call. status is "success",
// "error" or "circuit_open".
func RecordClientRequest(endpoint, status string, duration time.Duration) {
	ClientRequestsTotal.WithLabelValues(endpoint, status).Inc()
	ClientRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordDashboardLoad records the outcome of a Session.Load.
func RecordDashboardLoad(mode string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DashboardLoadsTotal.WithLabelValues(mode, status).Inc()
}

// SetBackendReachable records the last probe result.
func SetBackendReachable(ok bool) {
	if ok {
		BackendReachable.Set(1)
		return
	}
	BackendReachable.Set(0)
}

// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/salesboard/internal/logging"
)

// MsgRouteNotFound is the body of every 404.
const MsgRouteNotFound = "Route not found"

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LivenessResponse is the body of GET /health/live.
type LivenessResponse struct {
	Alive         bool    `json:"alive"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Timestamp     string  `json:"timestamp"`
}

// writeJSON encodes v with goccy/go-json. Encoding failures become a bare 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func respondNotFound(w http.ResponseWriter, r *http.Request) {
	logging.Ctx(r.Context()).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Route not found")
	writeJSON(w, http.StatusNotFound, ErrorResponse{Error: MsgRouteNotFound})
}

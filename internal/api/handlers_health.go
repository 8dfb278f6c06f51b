// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package api

import (
	"net/http"
	"strings"
	"time"
)

// Health status values.
const (
	StatusOK      = "OK"
	HealthMessage = "Salesboard frontend is running"
)

// Handler serves the health, redirect and static routes.
type Handler struct {
	startTime  time.Time
	backendURL string
	staticDir  string
	static     http.Handler
	now        func() time.Time
}

// NewHandler creates a Handler. backendURL is the /api/* redirect target.
func NewHandler(backendURL, staticDir string) *Handler {
	return &Handler{
		startTime:  time.Now(),
		backendURL: strings.TrimRight(backendURL, "/"),
		staticDir:  staticDir,
		static:     http.FileServer(http.Dir(staticDir)),
		now:        time.Now,
	}
}

// Health reports that the frontend server is up. It does not check the
// analytics backend.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: StatusOK, Message: HealthMessage})
}

// HealthLive is the liveness probe.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	writeJSON(w, http.StatusOK, LivenessResponse{
		Alive:         true,
		UptimeSeconds: now.Sub(h.startTime).Seconds(),
		Timestamp:     now.UTC().Format(time.RFC3339),
	})
}

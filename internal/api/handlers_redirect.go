// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/salesboard/internal/logging"
	"github.com/tomtom215/salesboard/internal/metrics"
)

// APIRedirect sends any /api/* request to the backend with a 307, so the
// method and body are preserved. The /api prefix is dropped and the query
// string kept.
func (h *Handler) APIRedirect(w http.ResponseWriter, r *http.Request) {
	target := h.redirectTarget(strings.TrimPrefix(r.URL.Path, "/api"), r.URL.RawQuery)
	metrics.APIRedirectsTotal.Inc()
	logging.Ctx(r.Context()).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("target", target).
		Msg("Redirecting API request")
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

func (h *Handler) redirectTarget(rest, rawQuery string) string {
	target := h.backendURL + "/" + strings.TrimLeft(rest, "/")
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return target
}

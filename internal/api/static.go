// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/tomtom215/salesboard/internal/logging"
)

// ServeStatic serves files from the static directory. "/" serves
// index.html; missing files and directories are a JSON 404.
func (h *Handler) ServeStatic(w http.ResponseWriter, r *http.Request) {
	p := path.Clean("/" + r.URL.Path)
	if p == "/" {
		h.serveIndex(w, r)
		return
	}
	if !h.fileExists(p) {
		respondNotFound(w, r)
		return
	}

	setCacheControl(w, p)
	h.static.ServeHTTP(w, r)
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	index := filepath.Join(h.staticDir, "index.html")
	if !h.fileExists("/index.html") {
		respondNotFound(w, r)
		return
	}
	setCacheControl(w, "/index.html")
	http.ServeFile(w, r, index)
}

func (h *Handler) fileExists(p string) bool {
	f, err := http.Dir(h.staticDir).Open(p)
	if err != nil {
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return !stat.IsDir()
}

// cacheableExt are fingerprinted or rarely changing assets.
var cacheableExt = map[string]bool{
	".js": true, ".mjs": true, ".css": true, ".map": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".svg": true, ".webp": true, ".ico": true,
	".woff": true, ".woff2": true, ".ttf": true,
}

func setCacheControl(w http.ResponseWriter, p string) {
	ext := strings.ToLower(path.Ext(p))
	switch {
	case ext == ".html":
		w.Header().Set("Cache-Control", "no-cache")
	case cacheableExt[ext]:
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}
}

// staticDirUsable logs once at startup when the static directory is missing.
func staticDirUsable(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logging.Warn().Str("static_dir", dir).Msg("Static directory not found; only health and API routes will respond")
		return false
	}
	return true
}

// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package charts

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goccy/go-json"
)

// ErrReleased is returned when a handle is released twice.
var ErrReleased = errors.New("chart handle already released")

// Renderer draws a chart configuration onto a named surface.
type Renderer interface {
	Create(surface string, cfg Config) (Handle, error)
}

// Handle is a live rendered chart. Release frees it.
type Handle interface {
	Config() Config
	Release() error
}

// Resetter is implemented by handles whose pan/zoom view can be reset.
type Resetter interface {
	ResetZoom()
}

// Exporter is implemented by handles that can serialise their drawing.
// Ext is the file extension of the exported bytes, including the dot.
type Exporter interface {
	Export() ([]byte, error)
	Ext() string
}

// MemoryRenderer keeps charts in memory. It is used headless and in tests.
type MemoryRenderer struct {
	mu       sync.Mutex
	nextID   uint64
	live     map[uint64]*MemoryHandle
	created  int
	released int
}

// NewMemoryRenderer returns an empty MemoryRenderer.
func NewMemoryRenderer() *MemoryRenderer {
	return &MemoryRenderer{live: make(map[uint64]*MemoryHandle)}
}

// Create implements Renderer.
func (m *MemoryRenderer) Create(surface string, cfg Config) (Handle, error) {
	if surface == "" {
		return nil, fmt.Errorf("create %s chart: empty surface", cfg.Kind)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	h := &MemoryHandle{r: m, id: m.nextID, surface: surface, cfg: cfg}
	m.live[h.id] = h
	m.created++
	return h, nil
}

// Live returns the number of unreleased handles.
func (m *MemoryRenderer) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

// Created returns the number of handles ever created.
func (m *MemoryRenderer) Created() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.created
}

// Released returns the number of handles released.
func (m *MemoryRenderer) Released() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.released
}

// Surfaces lists the surfaces holding a live chart.
func (m *MemoryRenderer) Surfaces() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.live))
	for _, h := range m.live {
		out = append(out, h.surface)
	}
	sort.Strings(out)
	return out
}

func (m *MemoryRenderer) release(h *MemoryHandle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.live[h.id]; !ok {
		return ErrReleased
	}
	delete(m.live, h.id)
	m.released++
	return nil
}

// MemoryHandle is a chart held by a MemoryRenderer.
type MemoryHandle struct {
	r       *MemoryRenderer
	id      uint64
	surface string
	cfg     Config

	mu     sync.Mutex
	resets int
}

// Config implements Handle.
func (h *MemoryHandle) Config() Config {
	return h.cfg
}

// Surface returns the surface the chart was drawn on.
func (h *MemoryHandle) Surface() string {
	return h.surface
}

// Release implements Handle.
func (h *MemoryHandle) Release() error {
	return h.r.release(h)
}

// ResetZoom implements Resetter.
func (h *MemoryHandle) ResetZoom() {
	h.mu.Lock()
	h.resets++
	h.mu.Unlock()
}

// Resets returns how many times ResetZoom was called.
func (h *MemoryHandle) Resets() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.resets
}

// Ext implements Exporter.
func (h *MemoryHandle) Ext() string { return ".json" }

// Export implements Exporter. The drawing is the JSON configuration.
func (h *MemoryHandle) Export() ([]byte, error) {
	b, err := json.Marshal(h.cfg)
	if err != nil {
		return nil, fmt.Errorf("export %s chart: %w", h.cfg.Kind, err)
	}
	return b, nil
}

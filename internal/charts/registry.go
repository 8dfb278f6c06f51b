// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package charts

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tomtom215/salesboard/internal/logging"
	"github.com/tomtom215/salesboard/internal/metrics"
)

// Factory produces the configuration for a slot.
type Factory func() (Config, error)

// Registry binds at most one live handle to each widget kind.
type Registry struct {
	mu       sync.Mutex
	renderer Renderer
	handles  map[Kind]Handle
}

// NewRegistry returns an empty registry drawing with renderer.
func NewRegistry(renderer Renderer) *Registry {
	return &Registry{renderer: renderer, handles: make(map[Kind]Handle)}
}

// Replace releases the handle bound to kind, then builds and renders a new
// one. The slot is never observed holding two handles. If the factory or the
// renderer fails the slot is left empty.
func (r *Registry) Replace(kind Kind, factory Factory) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.releaseLocked(kind)

	cfg, err := factory()
	if err != nil {
		return nil, fmt.Errorf("build %s chart: %w", kind, err)
	}
	h, err := r.renderer.Create(kind.Surface(), cfg)
	if err != nil {
		return nil, fmt.Errorf("render %s chart: %w", kind, err)
	}

	r.handles[kind] = h
	metrics.ChartsLive.WithLabelValues(string(kind)).Set(1)
	metrics.ChartRendersTotal.WithLabelValues(string(kind)).Inc()
	return h, nil
}

// Render is Replace with a fixed configuration.
func (r *Registry) Render(kind Kind, cfg Config) (Handle, error) {
	return r.Replace(kind, func() (Config, error) { return cfg, nil })
}

// releaseLocked unbinds kind. A failed release is logged; the slot is
// emptied regardless.
func (r *Registry) releaseLocked(kind Kind) {
	h, ok := r.handles[kind]
	if !ok {
		return
	}
	delete(r.handles, kind)
	metrics.ChartsLive.WithLabelValues(string(kind)).Set(0)
	if err := h.Release(); err != nil {
		logging.Warn().Err(err).Str("kind", string(kind)).Msg("Chart release failed")
	}
}

// Release unbinds one kind.
func (r *Registry) Release(kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseLocked(kind)
}

// ReleaseAll releases every handle. All slots end up empty; release
// errors are joined.
func (r *Registry) ReleaseAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for kind, h := range r.handles {
		delete(r.handles, kind)
		metrics.ChartsLive.WithLabelValues(string(kind)).Set(0)
		if err := h.Release(); err != nil {
			errs = append(errs, fmt.Errorf("release %s chart: %w", kind, err))
		}
	}
	return errors.Join(errs...)
}

// Get returns the handle bound to kind.
func (r *Registry) Get(kind Kind) (Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handles[kind]
	return h, ok
}

// Len returns the number of bound handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

// Kinds returns the bound kinds in grid order.
func (r *Registry) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Kind, 0, len(r.handles))
	for _, k := range allKinds {
		if _, ok := r.handles[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

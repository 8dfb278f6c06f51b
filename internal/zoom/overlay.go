// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

// Package zoom shows one grid chart enlarged with pan and zoom enabled.
package zoom

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tomtom215/salesboard/internal/charts"
	"github.com/tomtom215/salesboard/internal/logging"
)

// DefaultSurface is the overlay's drawing surface.
const DefaultSurface = "zoom-chart"

// FallbackTitle is shown when the source chart has no title.
const FallbackTitle = "Chart Detail"

// KeyEscape closes the overlay.
const KeyEscape = "Escape"

// ErrNotRendered is returned by Open when the kind has no live chart.
var ErrNotRendered = errors.New("chart not rendered")

// State of the overlay.
type State int

// Overlay states.
const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Lookup returns the live grid chart for a kind.
type Lookup func(kind charts.Kind) (charts.Handle, bool)

// Options returns the interactive zoom settings applied to the enlarged chart.
func Options() *charts.ZoomOptions {
	return &charts.ZoomOptions{
		WheelEnabled:   true,
		WheelSpeed:     0.1,
		PinchEnabled:   true,
		DragEnabled:    true,
		Mode:           "xy",
		PanEnabled:     true,
		PanMode:        "xy",
		PanModifierKey: "ctrl",
		Limits:         "original",
	}
}

// Overlay holds at most one enlarged chart.
type Overlay struct {
	mu       sync.Mutex
	lookup   Lookup
	renderer charts.Renderer
	surface  string

	kind   charts.Kind
	handle charts.Handle
	title  string
}

// New returns a closed overlay drawing on surface (DefaultSurface if empty).
func New(lookup Lookup, renderer charts.Renderer, surface string) *Overlay {
	if surface == "" {
		surface = DefaultSurface
	}
	return &Overlay{lookup: lookup, renderer: renderer, surface: surface}
}

// Open enlarges the chart bound to kind. Any open session is closed first.
// On ErrNotRendered the overlay is left as it was.
func (o *Overlay) Open(kind charts.Kind) error {
	src, ok := o.lookup(kind)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotRendered, kind)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	_ = o.closeLocked()

	cfg, err := src.Config().Clone()
	if err != nil {
		return err
	}
	cfg.Options.Zoom = Options()
	title := cfg.Title
	if title == "" {
		title = FallbackTitle
	}

	h, err := o.renderer.Create(o.surface, cfg)
	if err != nil {
		return fmt.Errorf("open zoom for %s: %w", kind, err)
	}
	o.kind, o.handle, o.title = kind, h, title
	logging.Debug().Str("kind", string(kind)).Msg("Zoom opened")
	return nil
}

// Close releases the enlarged chart. Closing a closed overlay is a no-op.
func (o *Overlay) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closeLocked()
}

func (o *Overlay) closeLocked() error {
	if o.handle == nil {
		return nil
	}
	h := o.handle
	o.kind, o.handle, o.title = "", nil, ""
	if err := h.Release(); err != nil {
		logging.Warn().Err(err).Msg("Zoom chart release failed")
		return err
	}
	return nil
}

// HandleKey closes the overlay on Escape and reports whether it did.
func (o *Overlay) HandleKey(key string) bool {
	if key != KeyEscape || o.State() != Open {
		return false
	}
	_ = o.Close()
	return true
}

// HandleBackdropClick closes the overlay.
func (o *Overlay) HandleBackdropClick() {
	_ = o.Close()
}

// ResetView resets the enlarged chart's pan and zoom. It returns false when
// the overlay is closed or the renderer cannot reset.
func (o *Overlay) ResetView() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	r, ok := o.handle.(charts.Resetter)
	if !ok {
		return false
	}
	r.ResetZoom()
	return true
}

// Active returns the kind shown, if any.
func (o *Overlay) Active() (charts.Kind, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.kind, o.handle != nil
}

// State returns Open or Closed.
func (o *Overlay) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.handle != nil {
		return Open
	}
	return Closed
}

// Title is the overlay heading, empty when closed.
func (o *Overlay) Title() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.title
}

// Handle returns the enlarged chart, nil when closed.
func (o *Overlay) Handle() charts.Handle {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.handle
}

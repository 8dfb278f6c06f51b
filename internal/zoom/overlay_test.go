// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package zoom

import (
	"errors"
	"testing"

	"github.com/tomtom215/salesboard/internal/charts"
)

type fixture struct {
	renderer *charts.MemoryRenderer
	registry *charts.Registry
	overlay  *Overlay
}

func newFixture(t *testing.T, kinds ...charts.Kind) *fixture {
	t.Helper()
	r := charts.NewMemoryRenderer()
	reg := charts.NewRegistry(r)
	for _, k := range kinds {
		if _, err := reg.Render(k, charts.Config{Kind: k, Family: k.Family(), Labels: []string{"x"}}); err != nil {
			t.Fatal(err)
		}
	}
	return &fixture{renderer: r, registry: reg, overlay: New(reg.Get, r, "")}
}

func TestOpen_NotRendered(t *testing.T) {
	f := newFixture(t)
	err := f.overlay.Open(charts.KindTopProducts)
	if !errors.Is(err, ErrNotRendered) {
		t.Fatalf("err = %v, want ErrNotRendered", err)
	}
	if f.overlay.State() != Closed || f.renderer.Live() != 0 {
		t.Error("overlay changed state on a missing chart")
	}
}

func TestOpen_AppliesZoomOptionsToClone(t *testing.T) {
	f := newFixture(t, charts.KindPriceCorrelation)
	if err := f.overlay.Open(charts.KindPriceCorrelation); err != nil {
		t.Fatal(err)
	}

	zcfg := f.overlay.Handle().Config()
	if zcfg.Options.Zoom == nil || zcfg.Options.Zoom.WheelSpeed != 0.1 || zcfg.Options.Zoom.PanModifierKey != "ctrl" || zcfg.Options.Zoom.Limits != "original" {
		t.Errorf("zoom options = %+v", zcfg.Options.Zoom)
	}
	src, _ := f.registry.Get(charts.KindPriceCorrelation)
	if src.Config().Options.Zoom != nil {
		t.Error("source chart config was mutated")
	}
	if f.overlay.Title() != FallbackTitle {
		t.Errorf("Title = %q", f.overlay.Title())
	}
	if kind, ok := f.overlay.Active(); !ok || kind != charts.KindPriceCorrelation {
		t.Errorf("Active = %v, %v", kind, ok)
	}
}

func TestOpen_SecondOpenReplacesFirst(t *testing.T) {
	f := newFixture(t, charts.KindTopProducts, charts.KindSalesMethod)

	if err := f.overlay.Open(charts.KindTopProducts); err != nil {
		t.Fatal(err)
	}
	first := f.overlay.Handle()
	if err := f.overlay.Open(charts.KindSalesMethod); err != nil {
		t.Fatal(err)
	}

	if kind, ok := f.overlay.Active(); !ok || kind != charts.KindSalesMethod {
		t.Errorf("Active = %v, %v; want sales-method", kind, ok)
	}
	// Two grid charts plus exactly one overlay chart.
	if f.renderer.Live() != 3 {
		t.Errorf("Live = %d, want 3", f.renderer.Live())
	}
	if err := first.Release(); !errors.Is(err, charts.ErrReleased) {
		t.Error("first zoom clone was not released")
	}
}

func TestClose_Idempotent(t *testing.T) {
	f := newFixture(t, charts.KindTopProducts)
	_ = f.overlay.Open(charts.KindTopProducts)

	if err := f.overlay.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.overlay.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if f.overlay.State() != Closed || f.overlay.Title() != "" || f.renderer.Live() != 1 {
		t.Error("overlay not fully closed")
	}
}

func TestHandleKeyAndBackdrop(t *testing.T) {
	f := newFixture(t, charts.KindTopProducts)
	_ = f.overlay.Open(charts.KindTopProducts)

	if f.overlay.HandleKey("Enter") {
		t.Error("Enter should not close")
	}
	if !f.overlay.HandleKey(KeyEscape) || f.overlay.State() != Closed {
		t.Error("Escape should close")
	}
	if f.overlay.HandleKey(KeyEscape) {
		t.Error("Escape on a closed overlay should report false")
	}

	_ = f.overlay.Open(charts.KindTopProducts)
	f.overlay.HandleBackdropClick()
	if f.overlay.State() != Closed {
		t.Error("backdrop click should close")
	}
}

type plainHandle struct{ cfg charts.Config }

func (p plainHandle) Config() charts.Config { return p.cfg }
func (p plainHandle) Release() error        { return nil }

type plainRenderer struct{}

func (plainRenderer) Create(_ string, cfg charts.Config) (charts.Handle, error) {
	return plainHandle{cfg: cfg}, nil
}

func TestResetView(t *testing.T) {
	f := newFixture(t, charts.KindTopProducts)
	if f.overlay.ResetView() {
		t.Error("ResetView on a closed overlay should be false")
	}
	_ = f.overlay.Open(charts.KindTopProducts)
	if !f.overlay.ResetView() {
		t.Fatal("ResetView should delegate to the memory handle")
	}
	if f.overlay.Handle().(*charts.MemoryHandle).Resets() != 1 {
		t.Error("reset not recorded")
	}

	plain := New(f.registry.Get, plainRenderer{}, "")
	_ = plain.Open(charts.KindTopProducts)
	if plain.ResetView() {
		t.Error("ResetView should be a no-op without Resetter")
	}
}

func TestOpen_UsesSourceTitle(t *testing.T) {
	r := charts.NewMemoryRenderer()
	reg := charts.NewRegistry(r)
	_, _ = reg.Render(charts.KindMonthlyTrends, charts.Config{Kind: charts.KindMonthlyTrends, Title: charts.PlaceholderTitle})
	o := New(reg.Get, r, "modal")
	if err := o.Open(charts.KindMonthlyTrends); err != nil {
		t.Fatal(err)
	}
	if o.Title() != charts.PlaceholderTitle {
		t.Errorf("Title = %q", o.Title())
	}
	if o.Handle().(*charts.MemoryHandle).Surface() != "modal" {
		t.Error("wrong surface")
	}
}

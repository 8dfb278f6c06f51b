// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

/*
Package dashboard drives one dashboard session: it loads data through a
DataSource, renders the seven chart widgets and the summary cards, and reacts
to filter changes, zoom requests and key presses.

A Session holds all of its state; there are no package globals. Render cycles
are serialised, so a Refresh never observes a half-released grid.

Usage:

	s := dashboard.New(apiClient, charts.NewMemoryRenderer(), dashboard.Config{})
	if err := s.Init(ctx); err != nil {
		// the failure has also been posted as a notification
	}
	_ = s.SetFilter(ctx, models.DimensionYears, []string{"2021"})
	cards := s.Cards()
*/
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/salesboard/internal/aggregate"
	"github.com/tomtom215/salesboard/internal/charts"
	"github.com/tomtom215/salesboard/internal/client"
	"github.com/tomtom215/salesboard/internal/filter"
	"github.com/tomtom215/salesboard/internal/logging"
	"github.com/tomtom215/salesboard/internal/metrics"
	"github.com/tomtom215/salesboard/internal/models"
	"github.com/tomtom215/salesboard/internal/notify"
	"github.com/tomtom215/salesboard/internal/zoom"
)

// User-facing notification texts.
const (
	MsgLoadFailed        = "Failed to load dashboard data"
	MsgOptionsFailed     = "Failed to load filter options"
	MsgChartNotAvailable = "Chart not available"
)

// Load modes, used as the metrics label.
const (
	ModeBaseline = "baseline"
	ModeFiltered = "filtered"
)

var (
	// ErrNotRendered is returned for a widget with no live chart.
	ErrNotRendered = errors.New("chart not rendered")

	// ErrExportUnsupported is returned by Download when the renderer cannot
	// export images.
	ErrExportUnsupported = errors.New("chart export not supported")
)

// DataSource is the analytics backend. *client.Client implements it.
type DataSource interface {
	LoadBaseline(ctx context.Context) (*models.Baseline, error)
	LoadFilterOptions(ctx context.Context) (*client.FilterOptions, error)
	FilteredData(ctx context.Context, sel models.FilterSelection) (*models.FilteredDataResponse, error)
}

// Config tunes a Session. Zero values select the defaults.
type Config struct {
	// LoadTimeout bounds one Load. 0 means no timeout.
	LoadTimeout time.Duration

	// NotificationTTL defaults to notify.DefaultTTL.
	NotificationTTL time.Duration

	// ZoomSurface defaults to zoom.DefaultSurface.
	ZoomSurface string

	// Now defaults to time.Now.
	Now func() time.Time

	NotifierOptions []notify.Option
}

// Session is one dashboard instance. It is safe for concurrent use.
type Session struct {
	cfg      Config
	source   DataSource
	filters  *filter.State
	registry *charts.Registry
	overlay  *zoom.Overlay
	notifier *notify.Notifier

	// cycle serialises load and release cycles.
	cycle sync.Mutex

	mu          sync.RWMutex
	cards       []SummaryCard
	lastUpdated time.Time
	options     *client.FilterOptions
	bundle      *aggregate.Bundle
}

// New wires a Session around source and renderer.
func New(source DataSource, renderer charts.Renderer, cfg Config) *Session {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	s := &Session{
		cfg:      cfg,
		source:   source,
		registry: charts.NewRegistry(renderer),
		notifier: notify.New(cfg.NotificationTTL, cfg.NotifierOptions...),
	}
	s.overlay = zoom.New(s.registry.Get, renderer, cfg.ZoomSurface)
	s.filters = filter.NewState(s.reload)
	return s
}

// Init loads the filter options and then the dashboard. A filter options
// failure is reported and does not stop the load.
func (s *Session) Init(ctx context.Context) error {
	optCtx, cancel := s.withTimeout(ctx)
	opts, err := s.source.LoadFilterOptions(optCtx)
	cancel()

	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Filter options unavailable")
		s.notifier.Error(fmt.Sprintf("%s: %v", MsgOptionsFailed, err))
	} else {
		s.mu.Lock()
		s.options = opts
		s.mu.Unlock()
	}
	return s.Load(ctx)
}

// Load fetches and renders the dashboard for the current filters. With no
// filters it uses the pre-aggregated endpoints; otherwise it aggregates the
// filtered records locally. A failed fetch posts one notification and leaves
// the rendered charts untouched.
func (s *Session) Load(ctx context.Context) error {
	s.cycle.Lock()
	defer s.cycle.Unlock()
	return s.loadLocked(ctx)
}

// Refresh releases every chart and loads again.
func (s *Session) Refresh(ctx context.Context) error {
	s.cycle.Lock()
	defer s.cycle.Unlock()

	if err := s.registry.ReleaseAll(); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Chart release failed during refresh")
	}
	return s.loadLocked(ctx)
}

func (s *Session) reload(ctx context.Context, _ models.FilterSelection) error {
	return s.Load(ctx)
}

func (s *Session) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.LoadTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.LoadTimeout)
	}
	return context.WithCancel(ctx)
}

func (s *Session) loadLocked(parent context.Context) error {
	ctx, cancel := s.withTimeout(parent)
	defer cancel()

	sel, gen := s.filters.Snapshot()
	mode := ModeBaseline
	if sel.Active() {
		mode = ModeFiltered
	}
	log := logging.Ctx(ctx)

	var bundle aggregate.Bundle
	if mode == ModeFiltered {
		resp, err := s.source.FilteredData(ctx, sel)
		if err != nil {
			return s.loadFailed(ctx, mode, gen, err)
		}
		bundle = aggregate.AggregateAll(resp.FilteredData)
		bundle.Summary.TotalRecords = resp.TotalRecords
	} else {
		b, err := s.source.LoadBaseline(ctx)
		if err != nil {
			return s.loadFailed(ctx, mode, gen, err)
		}
		bundle = aggregate.FromBaseline(b)
	}

	// A newer selection was committed while fetching; its own reload will
	// render.
	if current := s.filters.Generation(); current != gen {
		log.Debug().Uint64("generation", gen).Uint64("current", current).Msg("Discarding stale dashboard load")
		return nil
	}

	err := s.renderLocked(ctx, &bundle)
	metrics.RecordDashboardLoad(mode, err)
	if err == nil {
		log.Info().Str("mode", mode).Int("records", bundle.Summary.TotalRecords).Msg("Dashboard loaded")
	}
	return err
}

// loadFailed notifies once for a failed fetch. A failure for a superseded
// generation is dropped like a stale success.
func (s *Session) loadFailed(ctx context.Context, mode string, gen uint64, err error) error {
	if current := s.filters.Generation(); current != gen {
		logging.Ctx(ctx).Debug().Err(err).Uint64("generation", gen).Uint64("current", current).Msg("Discarding stale dashboard load failure")
		return nil
	}
	logging.Ctx(ctx).Error().Err(err).Str("mode", mode).Msg("Dashboard load failed")
	s.notifier.Error(MsgLoadFailed)
	metrics.RecordDashboardLoad(mode, err)
	return fmt.Errorf("load dashboard: %w", err)
}

// renderLocked replaces every widget from bundle. A widget that fails to
// render is logged and skipped; the others still render.
func (s *Session) renderLocked(ctx context.Context, bundle *aggregate.Bundle) error {
	if err := s.registry.ReleaseAll(); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Chart release failed")
	}

	var errs []error
	for _, kind := range charts.AllKinds() {
		_, err := s.registry.Replace(kind, func() (charts.Config, error) {
			return charts.Build(kind, bundle)
		})
		if err != nil {
			logging.Ctx(ctx).Error().Err(err).Str("kind", string(kind)).Msg("Chart render failed")
			errs = append(errs, fmt.Errorf("render %s: %w", kind, err))
		}
	}

	s.mu.Lock()
	s.cards = buildCards(bundle.Summary)
	s.lastUpdated = s.cfg.Now()
	s.bundle = bundle
	s.mu.Unlock()

	return errors.Join(errs...)
}

// SetFilter restricts one dimension and reloads. "All" clears it.
func (s *Session) SetFilter(ctx context.Context, dim models.Dimension, values []string) error {
	return s.filters.SetFilter(ctx, dim, values)
}

// ResetFilters clears every dimension and reloads.
func (s *Session) ResetFilters(ctx context.Context) error {
	return s.filters.Reset(ctx)
}

// HandleKey reacts to a key press: Escape closes the zoom overlay and Ctrl+R
// refreshes. It reports whether the key was handled.
func (s *Session) HandleKey(ctx context.Context, key string, ctrl bool) (bool, error) {
	switch {
	case key == zoom.KeyEscape:
		return s.overlay.HandleKey(key), nil
	case ctrl && (key == "r" || key == "R"):
		return true, s.Refresh(ctx)
	default:
		return false, nil
	}
}

// Zoom opens the overlay for kind.
func (s *Session) Zoom(kind charts.Kind) error {
	if err := s.overlay.Open(kind); err != nil {
		logging.Warn().Err(err).Str("kind", string(kind)).Msg("Zoom failed")
		s.notifier.Error(MsgChartNotAvailable)
		return err
	}
	return nil
}

// CloseZoom closes the overlay.
func (s *Session) CloseZoom() error {
	return s.overlay.Close()
}

// ResetZoom resets the pan and zoom of the enlarged chart when the overlay is
// open, or of the grid chart for kind otherwise.
func (s *Session) ResetZoom(kind charts.Kind) bool {
	if s.overlay.State() == zoom.Open {
		return s.overlay.ResetView()
	}
	h, ok := s.registry.Get(kind)
	if !ok {
		return false
	}
	r, ok := h.(charts.Resetter)
	if !ok {
		return false
	}
	r.ResetZoom()
	return true
}

// Download exports the chart for kind and returns it with its file name,
// <kind>-chart plus the exporter's extension (.png when it reports none).
func (s *Session) Download(kind charts.Kind) ([]byte, string, error) {
	h, ok := s.registry.Get(kind)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrNotRendered, kind)
	}
	exp, ok := h.(charts.Exporter)
	if !ok {
		return nil, "", ErrExportUnsupported
	}
	data, err := exp.Export()
	if err != nil {
		return nil, "", fmt.Errorf("export %s: %w", kind, err)
	}
	ext := exp.Ext()
	if ext == "" {
		ext = ".png"
	}
	return data, kind.Surface() + ext, nil
}

// Teardown closes the overlay and releases every chart.
func (s *Session) Teardown() error {
	s.cycle.Lock()
	defer s.cycle.Unlock()

	err := errors.Join(s.overlay.Close(), s.registry.ReleaseAll())
	s.notifier.Close()
	return err
}

// Cards returns the six summary cards of the last successful load.
func (s *Session) Cards() []SummaryCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SummaryCard, len(s.cards))
	copy(out, s.cards)
	return out
}

// LastUpdated is the time of the last successful load, formatted for the
// id-ID locale. It is empty before the first load.
func (s *Session) LastUpdated() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return formatLastUpdated(s.lastUpdated)
}

// FilterOptions returns the values offered by the filter selectors, nil when
// they could not be loaded.
func (s *Session) FilterOptions() *client.FilterOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.options
}

// Bundle returns the series behind the current charts.
func (s *Session) Bundle() (aggregate.Bundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bundle == nil {
		return aggregate.Bundle{}, false
	}
	return *s.bundle, true
}

// Chart returns the live chart for kind.
func (s *Session) Chart(kind charts.Kind) (charts.Handle, bool) {
	return s.registry.Get(kind)
}

// ChartCount is the number of live grid charts.
func (s *Session) ChartCount() int {
	return s.registry.Len()
}

// Filters returns the current selection.
func (s *Session) Filters() models.FilterSelection {
	return s.filters.Selection()
}

// HasActiveFilters reports whether any dimension is restricted.
func (s *Session) HasActiveFilters() bool {
	return s.filters.HasActiveFilters()
}

// Notifications returns the visible notifications.
func (s *Session) Notifications() []notify.Notification {
	return s.notifier.Active()
}

// NotificationCount is the number of notifications ever posted.
func (s *Session) NotificationCount() int {
	return s.notifier.Count()
}

// Overlay exposes the zoom overlay.
func (s *Session) Overlay() *zoom.Overlay {
	return s.overlay
}

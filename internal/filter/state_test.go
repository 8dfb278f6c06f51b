// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package filter

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/tomtom215/salesboard/internal/models"
)

type reloadRecorder struct {
	mu    sync.Mutex
	calls []models.FilterSelection
	err   error
}

func (r *reloadRecorder) reload(_ context.Context, sel models.FilterSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, sel)
	return r.err
}

func (r *reloadRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func TestSetFilter_AllClearsDimension(t *testing.T) {
	t.Parallel()

	rec := &reloadRecorder{}
	s := NewState(rec.reload)
	ctx := context.Background()

	if err := s.SetFilter(ctx, models.DimensionYears, []string{"2021"}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetFilter(ctx, models.DimensionYears, []string{"All"}); err != nil {
		t.Fatal(err)
	}

	if got := s.Selection().Years; len(got) != 0 {
		t.Errorf("Years = %v, want empty", got)
	}
	if rec.count() != 2 {
		t.Errorf("reloads = %d, want one per call", rec.count())
	}
	if s.HasActiveFilters() {
		t.Error("HasActiveFilters should be false")
	}
}

func TestSetFilter_AllOnFreshStateReloadsOnce(t *testing.T) {
	t.Parallel()

	rec := &reloadRecorder{}
	s := NewState(rec.reload)
	if err := s.SetFilter(context.Background(), models.DimensionYears, []string{"All"}); err != nil {
		t.Fatal(err)
	}
	if rec.count() != 1 {
		t.Errorf("reloads = %d, want 1", rec.count())
	}
	if rec.calls[0].Active() {
		t.Errorf("reloaded with %+v, want unrestricted", rec.calls[0])
	}
}

func TestSetFilter_InvalidYearLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	rec := &reloadRecorder{}
	s := NewState(rec.reload)
	ctx := context.Background()
	_ = s.SetFilter(ctx, models.DimensionYears, []string{"2020"})
	gen := s.Generation()

	err := s.SetFilter(ctx, models.DimensionYears, []string{"2021", "abc"})
	if !errors.Is(err, ErrInvalidYear) {
		t.Fatalf("err = %v, want ErrInvalidYear", err)
	}
	if !slices.Equal(s.Selection().Years, []int{2020}) {
		t.Errorf("Years = %v, want [2020]", s.Selection().Years)
	}
	if rec.count() != 1 || s.Generation() != gen {
		t.Errorf("invalid call reloaded or bumped generation")
	}
}

func TestSetFilter_DedupesAndKeepsOrder(t *testing.T) {
	t.Parallel()

	s := NewState(nil)
	ctx := context.Background()
	_ = s.SetFilter(ctx, models.DimensionRegions, []string{"West", "East", "West"})
	_ = s.SetFilter(ctx, models.DimensionYears, []string{"2021", " 2020", "2021"})

	sel := s.Selection()
	if !slices.Equal(sel.Regions, []string{"West", "East"}) {
		t.Errorf("Regions = %v", sel.Regions)
	}
	if !slices.Equal(sel.Years, []int{2021, 2020}) {
		t.Errorf("Years = %v", sel.Years)
	}
}

func TestSetFilter_UnknownDimension(t *testing.T) {
	t.Parallel()

	s := NewState(nil)
	for _, vals := range [][]string{{"x"}, {"All"}} {
		if err := s.SetFilter(context.Background(), models.Dimension("states"), vals); !errors.Is(err, models.ErrUnknownDimension) {
			t.Errorf("SetFilter(%v) err = %v", vals, err)
		}
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	rec := &reloadRecorder{}
	s := NewState(rec.reload)
	ctx := context.Background()
	_ = s.SetFilter(ctx, models.DimensionProducts, []string{"A"})
	_ = s.SetFilter(ctx, models.DimensionRetailers, []string{"R"})

	if err := s.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	if s.HasActiveFilters() {
		t.Error("filters still active after Reset")
	}
	if rec.count() != 3 || rec.calls[2].Active() {
		t.Errorf("Reset should reload once with the baseline selection")
	}
	if s.Generation() != 3 {
		t.Errorf("Generation = %d, want 3", s.Generation())
	}
}

func TestSetFilter_PropagatesReloadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	s := NewState((&reloadRecorder{err: boom}).reload)
	if err := s.SetFilter(context.Background(), models.DimensionRegions, []string{"West"}); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
	// The selection is committed even when the reload fails.
	if !s.HasActiveFilters() {
		t.Error("selection not committed")
	}
}

func TestSelectionIsACopy(t *testing.T) {
	t.Parallel()

	s := NewState(nil)
	_ = s.SetFilter(context.Background(), models.DimensionRegions, []string{"West"})
	sel := s.Selection()
	sel.Regions[0] = "East"
	if s.Selection().Regions[0] != "West" {
		t.Error("Selection leaked internal slice")
	}
}

func TestConcurrentSetFilter(t *testing.T) {
	t.Parallel()

	rec := &reloadRecorder{}
	s := NewState(rec.reload)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.SetFilter(context.Background(), models.DimensionRegions, []string{"West"})
		}()
	}
	wg.Wait()
	if rec.count() != 20 || s.Generation() != 20 {
		t.Errorf("reloads = %d generation = %d", rec.count(), s.Generation())
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	s := NewState(nil)
	_ = s.SetFilter(context.Background(), models.DimensionProducts, []string{"A"})
	sel, gen := s.Snapshot()
	if gen != 1 || !slices.Equal(sel.Products, []string{"A"}) {
		t.Errorf("Snapshot = %+v, %d", sel, gen)
	}
}

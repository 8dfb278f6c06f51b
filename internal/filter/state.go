// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

// Package filter holds the dashboard's active filter selection.
package filter

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/tomtom215/salesboard/internal/models"
)

// AllSentinel in a value list clears the dimension.
const AllSentinel = "All"

// ErrInvalidYear is returned when a year value is not an integer.
var ErrInvalidYear = errors.New("invalid year")

// ReloadFunc reloads the dashboard for a selection.
type ReloadFunc func(ctx context.Context, sel models.FilterSelection) error

// State is safe for concurrent use. Reloads run outside the lock; a reload
// whose generation is no longer current is stale and may be discarded.
type State struct {
	mu         sync.Mutex
	sel        models.FilterSelection
	generation uint64
	reload     ReloadFunc
}

// NewState returns an unrestricted State. reload may be nil.
func NewState(reload ReloadFunc) *State {
	return &State{reload: reload}
}

// SetReload replaces the reload callback.
func (s *State) SetReload(reload ReloadFunc) {
	s.mu.Lock()
	s.reload = reload
	s.mu.Unlock()
}

// SetFilter replaces one dimension and triggers one reload. "All" anywhere in
// values clears the dimension. Bad years return ErrInvalidYear and leave the
// state untouched.
func (s *State) SetFilter(ctx context.Context, dim models.Dimension, values []string) error {
	cleared := slices.Contains(values, AllSentinel)

	var years []int
	var strs []string
	if !cleared {
		switch dim {
		case models.DimensionYears:
			parsed, err := parseYears(values)
			if err != nil {
				return err
			}
			years = parsed
		case models.DimensionRegions, models.DimensionProducts, models.DimensionRetailers:
			strs = dedupe(values)
		default:
			return fmt.Errorf("%w: %q", models.ErrUnknownDimension, dim)
		}
	} else if _, err := models.ParseDimension(string(dim)); err != nil {
		return err
	}

	s.mu.Lock()
	switch dim {
	case models.DimensionYears:
		s.sel.Years = years
	case models.DimensionRegions:
		s.sel.Regions = strs
	case models.DimensionProducts:
		s.sel.Products = strs
	case models.DimensionRetailers:
		s.sel.Retailers = strs
	}
	return s.commitLocked(ctx)
}

// Reset clears every dimension and triggers one reload.
func (s *State) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.sel = models.FilterSelection{}
	return s.commitLocked(ctx)
}

// commitLocked bumps the generation, releases the lock and reloads.
func (s *State) commitLocked(ctx context.Context) error {
	s.generation++
	sel := s.sel.Clone()
	reload := s.reload
	s.mu.Unlock()

	if reload == nil {
		return nil
	}
	return reload(ctx, sel)
}

// HasActiveFilters reports whether any dimension is restricted.
func (s *State) HasActiveFilters() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Active()
}

// Selection returns a copy of the current selection.
func (s *State) Selection() models.FilterSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Clone()
}

// Snapshot returns the selection together with its generation.
func (s *State) Snapshot() (models.FilterSelection, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Clone(), s.generation
}

// Generation increments on every committed change.
func (s *State) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func parseYears(values []string) ([]int, error) {
	out := make([]int, 0, len(values))
	for _, v := range values {
		y, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidYear, v)
		}
		if !slices.Contains(out, y) {
			out = append(out, y)
		}
	}
	return out, nil
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

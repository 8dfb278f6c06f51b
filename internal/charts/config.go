// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package charts

import (
	"fmt"

	"github.com/mitchellh/copystructure"
)

// Point is one scatter sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dataset is one drawn series.
type Dataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data,omitempty"`
	Points          []Point   `json:"points,omitempty"`
	BackgroundColor []string  `json:"backgroundColor,omitempty"`
	BorderColor     []string  `json:"borderColor,omitempty"`
	BorderWidth     int       `json:"borderWidth,omitempty"`
	Tension         float64   `json:"tension,omitempty"`
	Fill            bool      `json:"fill"`
}

// ZoomOptions configures interactive pan and zoom.
type ZoomOptions struct {
	WheelEnabled   bool    `json:"wheelEnabled"`
	WheelSpeed     float64 `json:"wheelSpeed"`
	PinchEnabled   bool    `json:"pinchEnabled"`
	DragEnabled    bool    `json:"dragEnabled"`
	Mode           string  `json:"mode"`
	PanEnabled     bool    `json:"panEnabled"`
	PanMode        string  `json:"panMode"`
	PanModifierKey string  `json:"panModifierKey"`
	// Limits "original" stops zooming out past the unzoomed range.
	Limits string `json:"limits"`
}

// Options are the chart-level presentation settings.
type Options struct {
	IndexAxis      string       `json:"indexAxis,omitempty"`
	XAxisTitle     string       `json:"xAxisTitle,omitempty"`
	YAxisTitle     string       `json:"yAxisTitle,omitempty"`
	ShowLegend     bool         `json:"showLegend"`
	LegendPosition string       `json:"legendPosition,omitempty"`
	BeginAtZero    bool         `json:"beginAtZero"`
	CurrencyTicks  bool         `json:"currencyTicks"`
	Zoom           *ZoomOptions `json:"zoom,omitempty"`
}

// Config is a renderer-neutral chart configuration.
type Config struct {
	Kind        Kind      `json:"kind"`
	Family      Family    `json:"family"`
	Title       string    `json:"title,omitempty"`
	Labels      []string  `json:"labels"`
	Datasets    []Dataset `json:"datasets"`
	Options     Options   `json:"options"`
	Placeholder bool      `json:"placeholder"`
}

// Clone returns a deep copy of c.
func (c Config) Clone() (Config, error) {
	v, err := copystructure.Copy(c)
	if err != nil {
		return Config{}, fmt.Errorf("clone %s config: %w", c.Kind, err)
	}
	return v.(Config), nil
}

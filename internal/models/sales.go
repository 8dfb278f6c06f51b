// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

// Package models defines the sales record, the filter selection and the
// analytics API response schemas shared by the client, the aggregator and
// the dashboard session.
package models

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// DateLayout is the backend's date format for Invoice Date.
const DateLayout = "2006-01-02"

var dateLayouts = []string{DateLayout, time.RFC3339, "2006-01-02T15:04:05"}

// Date is a calendar day without zone semantics.
type Date struct {
	time.Time
}

// NewDate returns the Date for y-m-d (UTC).
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts the layouts the backend has been seen to emit.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognised date %q", s)
}

// UnmarshalJSON accepts a date string or null. Null leaves the zero Date.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invoice date: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON writes YYYY-MM-DD, or null for the zero Date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// SalesRecord is one invoice line as returned by POST /filtered-data.
// Numeric fields missing from the payload decode to 0.
type SalesRecord struct {
	InvoiceDate  Date    `json:"Invoice Date"`
	Product      string  `json:"Product"`
	Region       string  `json:"Region"`
	State        string  `json:"State"`
	Retailer     string  `json:"Retailer"`
	SalesMethod  string  `json:"Sales Method"`
	TotalSales   float64 `json:"Total Sales"`
	UnitsSold    float64 `json:"Units Sold"`
	PricePerUnit float64 `json:"Price per Unit"`
}

// Dimension names one filterable attribute.
type Dimension string

// Filter dimensions.
const (
	DimensionYears     Dimension = "years"
	DimensionRegions   Dimension = "regions"
	DimensionProducts  Dimension = "products"
	DimensionRetailers Dimension = "retailers"
)

// ParseDimension maps a dimension name to a Dimension.
func ParseDimension(s string) (Dimension, error) {
	switch d := Dimension(strings.ToLower(strings.TrimSpace(s))); d {
	case DimensionYears, DimensionRegions, DimensionProducts, DimensionRetailers:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDimension, s)
	}
}

// FilterSelection is the set of active filters. An empty slice means the
// dimension is unrestricted.
type FilterSelection struct {
	Years     []int    `json:"years"`
	Regions   []string `json:"regions"`
	Products  []string `json:"products"`
	Retailers []string `json:"retailers"`
}

// MarshalJSON always emits arrays, never null, so the backend's
// "if filters.get(dim)" checks see an empty list.
func (f FilterSelection) MarshalJSON() ([]byte, error) {
	type wire FilterSelection
	w := wire(f.Clone())
	return json.Marshal(w)
}

// Active reports whether any dimension is restricted.
func (f FilterSelection) Active() bool {
	return len(f.Years) > 0 || len(f.Regions) > 0 || len(f.Products) > 0 || len(f.Retailers) > 0
}

// Clone returns a deep copy with non-nil slices.
func (f FilterSelection) Clone() FilterSelection {
	return FilterSelection{
		Years:     append(make([]int, 0, len(f.Years)), f.Years...),
		Regions:   append(make([]string, 0, len(f.Regions)), f.Regions...),
		Products:  append(make([]string, 0, len(f.Products)), f.Products...),
		Retailers: append(make([]string, 0, len(f.Retailers)), f.Retailers...),
	}
}

// Matches reports whether r passes every restricted dimension.
func (f FilterSelection) Matches(r *SalesRecord) bool {
	if len(f.Years) > 0 && !slices.Contains(f.Years, r.InvoiceDate.Year()) {
		return false
	}
	if len(f.Regions) > 0 && !slices.Contains(f.Regions, r.Region) {
		return false
	}
	if len(f.Products) > 0 && !slices.Contains(f.Products, r.Product) {
		return false
	}
	if len(f.Retailers) > 0 && !slices.Contains(f.Retailers, r.Retailer) {
		return false
	}
	return true
}

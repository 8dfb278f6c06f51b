// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package aggregate

import (
	"math"
	"slices"
)

// PlaceholderLabel is the single entry shown when a series has no data.
const PlaceholderLabel = "No Data"

// Top-N caps per widget.
const (
	TopProductsCap   = 10
	TopRetailersCap  = 10
	TopStatesCap     = 15
	RetailerRadarCap = 8
)

// YearTrend is one year of month buckets; index 0 is January.
type YearTrend struct {
	Year  int
	Sales [12]float64
	Units [12]float64
}

// TotalSales sums the twelve buckets.
func (y YearTrend) TotalSales() float64 {
	var t float64
	for _, v := range y.Sales {
		t += v
	}
	return t
}

// MonthlyTrendSeries maps each observed year to its twelve buckets.
// The placeholder holds one all-zero year with Year 0.
type MonthlyTrendSeries struct {
	ByYear      map[int]YearTrend
	Placeholder bool
}

// Years returns the year keys in ascending order.
func (m MonthlyTrendSeries) Years() []int {
	years := make([]int, 0, len(m.ByYear))
	for y := range m.ByYear {
		years = append(years, y)
	}
	slices.Sort(years)
	return years
}

// Trends returns the year buckets in ascending year order.
func (m MonthlyTrendSeries) Trends() []YearTrend {
	out := make([]YearTrend, 0, len(m.ByYear))
	for _, y := range m.Years() {
		out = append(out, m.ByYear[y])
	}
	return out
}

func monthlyPlaceholder() MonthlyTrendSeries {
	return MonthlyTrendSeries{ByYear: map[int]YearTrend{0: {}}, Placeholder: true}
}

// RankEntry is one grouped key in a ranking.
type RankEntry struct {
	Key          string
	TotalSales   float64
	UnitsSold    float64
	Transactions int
	// AvgPrice is the mean Price per Unit over the group's records.
	AvgPrice float64
	// Region is the first region seen for the key (state rankings only).
	Region string
	// AvgPricePerUnit is TotalSales/UnitsSold, 0 when no units were sold.
	AvgPricePerUnit float64
}

// Ranking is sorted by TotalSales descending and capped.
type Ranking struct {
	Entries     []RankEntry
	Placeholder bool
}

// Labels returns the entry keys in rank order.
func (r Ranking) Labels() []string {
	out := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Key
	}
	return out
}

// Sales returns the entry totals in rank order.
func (r Ranking) Sales() []float64 {
	out := make([]float64, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.TotalSales
	}
	return out
}

func rankingPlaceholder() Ranking {
	return Ranking{Entries: []RankEntry{{Key: PlaceholderLabel}}, Placeholder: true}
}

// rank stable-sorts entries by TotalSales descending and truncates to limit.
// A limit <= 0 keeps everything.
func rank(entries []RankEntry, limit int) Ranking {
	if len(entries) == 0 {
		return rankingPlaceholder()
	}
	slices.SortStableFunc(entries, func(a, b RankEntry) int {
		switch {
		case a.TotalSales > b.TotalSales:
			return -1
		case a.TotalSales < b.TotalSales:
			return 1
		default:
			return 0
		}
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return Ranking{Entries: entries}
}

// Distribution is a categorical breakdown in first-occurrence order.
// All four slices have the same length.
type Distribution struct {
	Labels       []string
	Sales        []float64
	Units        []float64
	Transactions []int
	Placeholder  bool
}

// Len returns the number of categories.
func (d Distribution) Len() int {
	return len(d.Labels)
}

func distributionPlaceholder() Distribution {
	return Distribution{
		Labels:       []string{PlaceholderLabel},
		Sales:        []float64{0},
		Units:        []float64{0},
		Transactions: []int{0},
		Placeholder:  true,
	}
}

// Point is one scatter sample: X is price per unit, Y is units sold.
type Point struct {
	X float64
	Y float64
}

// ScatterSeries keeps one point per input record, in input order.
type ScatterSeries struct {
	Points      []Point
	Placeholder bool
}

func scatterPlaceholder() ScatterSeries {
	return ScatterSeries{Points: []Point{{}}, Placeholder: true}
}

// Pearson returns the correlation coefficient of X and Y,
// or 0 with fewer than two points or zero variance.
func (s ScatterSeries) Pearson() float64 {
	n := float64(len(s.Points))
	if s.Placeholder || n < 2 {
		return 0
	}
	var sx, sy float64
	for _, p := range s.Points {
		sx += p.X
		sy += p.Y
	}
	mx, my := sx/n, sy/n

	var cov, vx, vy float64
	for _, p := range s.Points {
		dx, dy := p.X-mx, p.Y-my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return 0
	}
	return cov / math.Sqrt(vx*vy)
}

// Summary feeds the six summary cards.
type Summary struct {
	TotalRecords    int
	TotalSales      float64
	TotalUnits      float64
	AvgPricePerUnit float64
	UniqueProducts  int
	UniqueRegions   int
	UniqueRetailers int
	UniqueStates    int
	Years           []int
}

// Bundle is everything one dashboard render needs.
type Bundle struct {
	Summary          Summary
	MonthlyTrends    MonthlyTrendSeries
	TopProducts      Ranking
	Regions          Distribution
	PriceCorrelation ScatterSeries
	States           Ranking
	SalesMethods     Distribution
	Retailers        Ranking
	// Filtered is true when the bundle was computed client-side from raw records.
	Filtered bool
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

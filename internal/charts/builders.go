// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package charts

import (
	"fmt"
	"strconv"

	"github.com/tomtom215/salesboard/internal/aggregate"
)

// Visual constants.
const (
	PlaceholderTitle  = "No Data Available"
	PlaceholderFill   = "rgba(200, 200, 200, 0.5)"
	PlaceholderBorder = "rgba(200, 200, 200, 1)"
	SliceBorder       = "#FFFFFF"
)

// MonthLabels are the x-axis labels of the trend chart.
var MonthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var yearPalette = []string{"#3B82F6", "#10B981", "#F59E0B", "#EF4444"}

// Palette is the categorical slice palette.
var Palette = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#84CC16", "#F97316", "#EC4899", "#6366F1",
}

func placeholder(kind Kind, labels []string, data []float64, sliced bool) Config {
	ds := Dataset{
		Label:           aggregate.PlaceholderLabel,
		Data:            data,
		BackgroundColor: []string{PlaceholderFill},
		BorderColor:     []string{PlaceholderBorder},
		BorderWidth:     1,
	}
	if sliced {
		ds.BorderColor = []string{SliceBorder}
		ds.BorderWidth = 2
	}
	return Config{
		Kind:        kind,
		Family:      kind.Family(),
		Title:       PlaceholderTitle,
		Labels:      labels,
		Datasets:    []Dataset{ds},
		Placeholder: true,
	}
}

// BuildMonthlyTrends draws one line per year, oldest first.
func BuildMonthlyTrends(s aggregate.MonthlyTrendSeries) Config {
	if s.Placeholder || len(s.ByYear) == 0 {
		return placeholder(KindMonthlyTrends, cloneStrings(MonthLabels), make([]float64, 12), false)
	}
	cfg := Config{
		Kind:    KindMonthlyTrends,
		Family:  FamilyLine,
		Labels:  cloneStrings(MonthLabels),
		Options: Options{ShowLegend: true, LegendPosition: "top", BeginAtZero: true, CurrencyTicks: true},
	}
	for i, t := range s.Trends() {
		color := yearPalette[i%len(yearPalette)]
		cfg.Datasets = append(cfg.Datasets, Dataset{
			Label:           "Year " + strconv.Itoa(t.Year),
			Data:            append([]float64(nil), t.Sales[:]...),
			BorderColor:     []string{color},
			BackgroundColor: []string{color + "20"},
			Tension:         0.4,
		})
	}
	return cfg
}

// BuildTopProducts draws a vertical bar per product.
func BuildTopProducts(r aggregate.Ranking) Config {
	if r.Placeholder {
		return placeholder(KindTopProducts, []string{aggregate.PlaceholderLabel}, []float64{0}, false)
	}
	return Config{
		Kind:   KindTopProducts,
		Family: FamilyBar,
		Labels: r.Labels(),
		Datasets: []Dataset{{
			Label:           "Total Sales",
			Data:            r.Sales(),
			BackgroundColor: []string{"rgba(59, 130, 246, 0.8)"},
			BorderColor:     []string{"rgba(59, 130, 246, 1)"},
			BorderWidth:     1,
		}},
		Options: Options{BeginAtZero: true, CurrencyTicks: true},
	}
}

// BuildRegionDistribution draws a doughnut slice per region.
func BuildRegionDistribution(d aggregate.Distribution) Config {
	if d.Placeholder {
		return placeholder(KindRegionDistribution, []string{aggregate.PlaceholderLabel}, []float64{0}, true)
	}
	return Config{
		Kind:   KindRegionDistribution,
		Family: FamilyDoughnut,
		Labels: cloneStrings(d.Labels),
		Datasets: []Dataset{{
			Data:            append([]float64(nil), d.Sales...),
			BackgroundColor: cloneStrings(Palette),
			BorderColor:     []string{SliceBorder},
			BorderWidth:     2,
		}},
		Options: Options{ShowLegend: true, LegendPosition: "bottom"},
	}
}

// BuildPriceCorrelation draws one point per record.
func BuildPriceCorrelation(s aggregate.ScatterSeries) Config {
	opts := Options{XAxisTitle: "Price per Unit ($)", YAxisTitle: "Units Sold"}
	if s.Placeholder {
		cfg := placeholder(KindPriceCorrelation, nil, nil, false)
		cfg.Datasets[0].Points = []Point{{}}
		cfg.Options = opts
		return cfg
	}
	pts := make([]Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = Point{X: p.X, Y: p.Y}
	}
	return Config{
		Kind:   KindPriceCorrelation,
		Family: FamilyScatter,
		Datasets: []Dataset{{
			Label:           "Price vs Units",
			Points:          pts,
			BackgroundColor: []string{"rgba(59, 130, 246, 0.6)"},
			BorderColor:     []string{"rgba(59, 130, 246, 1)"},
		}},
		Options: opts,
	}
}

// BuildStateAnalysis draws a horizontal bar per state.
func BuildStateAnalysis(r aggregate.Ranking) Config {
	if r.Placeholder {
		cfg := placeholder(KindStateAnalysis, []string{aggregate.PlaceholderLabel}, []float64{0}, false)
		cfg.Options.IndexAxis = "y"
		return cfg
	}
	return Config{
		Kind:   KindStateAnalysis,
		Family: FamilyHorizontalBar,
		Labels: r.Labels(),
		Datasets: []Dataset{{
			Label:           "Total Sales",
			Data:            r.Sales(),
			BackgroundColor: []string{"rgba(16, 185, 129, 0.8)"},
			BorderColor:     []string{"rgba(16, 185, 129, 1)"},
			BorderWidth:     1,
		}},
		Options: Options{IndexAxis: "y", BeginAtZero: true, CurrencyTicks: true},
	}
}

// BuildSalesMethod draws a pie slice per sales method.
func BuildSalesMethod(d aggregate.Distribution) Config {
	if d.Placeholder {
		return placeholder(KindSalesMethod, []string{aggregate.PlaceholderLabel}, []float64{0}, true)
	}
	return Config{
		Kind:   KindSalesMethod,
		Family: FamilyPie,
		Labels: cloneStrings(d.Labels),
		Datasets: []Dataset{{
			Data:            append([]float64(nil), d.Sales...),
			BackgroundColor: cloneStrings(Palette[:5]),
			BorderColor:     []string{SliceBorder},
			BorderWidth:     2,
		}},
		Options: Options{ShowLegend: true, LegendPosition: "bottom"},
	}
}

// BuildRetailerPerformance draws the top retailers on a radar.
func BuildRetailerPerformance(r aggregate.Ranking) Config {
	if r.Placeholder {
		cfg := placeholder(KindRetailerPerformance, []string{aggregate.PlaceholderLabel}, []float64{0}, false)
		cfg.Datasets[0].Label = "Sales Performance"
		cfg.Datasets[0].BackgroundColor = []string{"rgba(200, 200, 200, 0.2)"}
		return cfg
	}
	labels, data := r.Labels(), r.Sales()
	if len(labels) > aggregate.RetailerRadarCap {
		labels, data = labels[:aggregate.RetailerRadarCap], data[:aggregate.RetailerRadarCap]
	}
	return Config{
		Kind:   KindRetailerPerformance,
		Family: FamilyRadar,
		Labels: labels,
		Datasets: []Dataset{{
			Label:           "Sales Performance",
			Data:            data,
			BackgroundColor: []string{"rgba(245, 158, 11, 0.2)"},
			BorderColor:     []string{"rgba(245, 158, 11, 1)"},
		}},
		Options: Options{BeginAtZero: true, CurrencyTicks: true},
	}
}

// Build returns the configuration for one widget of b.
func Build(kind Kind, b *aggregate.Bundle) (Config, error) {
	switch kind {
	case KindMonthlyTrends:
		return BuildMonthlyTrends(b.MonthlyTrends), nil
	case KindTopProducts:
		return BuildTopProducts(b.TopProducts), nil
	case KindRegionDistribution:
		return BuildRegionDistribution(b.Regions), nil
	case KindPriceCorrelation:
		return BuildPriceCorrelation(b.PriceCorrelation), nil
	case KindStateAnalysis:
		return BuildStateAnalysis(b.States), nil
	case KindSalesMethod:
		return BuildSalesMethod(b.SalesMethods), nil
	case KindRetailerPerformance:
		return BuildRetailerPerformance(b.Retailers), nil
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func cloneStrings(s []string) []string {
	return append([]string(nil), s...)
}

// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

// Package charts maps aggregated series onto renderer-neutral chart
// configurations and owns the lifecycle of rendered chart handles.
package charts

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind.
var ErrUnknownKind = errors.New("unknown chart kind")

// Kind identifies one dashboard widget.
type Kind string

// Widget kinds.
const (
	KindMonthlyTrends       Kind = "monthly-trends"
	KindTopProducts         Kind = "top-products"
	KindRegionDistribution  Kind = "region-distribution"
	KindPriceCorrelation    Kind = "price-correlation"
	KindStateAnalysis       Kind = "state-analysis"
	KindSalesMethod         Kind = "sales-method"
	KindRetailerPerformance Kind = "retailer-performance"
)

var allKinds = []Kind{
	KindMonthlyTrends,
	KindTopProducts,
	KindRegionDistribution,
	KindPriceCorrelation,
	KindStateAnalysis,
	KindSalesMethod,
	KindRetailerPerformance,
}

// AllKinds returns every widget kind in grid order.
func AllKinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// ParseKind maps a name such as "top-products" to its Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Family is the chart type a widget is drawn with.
type Family string

// Chart families.
const (
	FamilyLine          Family = "line"
	FamilyBar           Family = "bar"
	FamilyDoughnut      Family = "doughnut"
	FamilyScatter       Family = "scatter"
	FamilyHorizontalBar Family = "horizontal-bar"
	FamilyPie           Family = "pie"
	FamilyRadar         Family = "radar"
)

// Family returns the fixed chart family for k.
func (k Kind) Family() Family {
	switch k {
	case KindMonthlyTrends:
		return FamilyLine
	case KindTopProducts:
		return FamilyBar
	case KindRegionDistribution:
		return FamilyDoughnut
	case KindPriceCorrelation:
		return FamilyScatter
	case KindStateAnalysis:
		return FamilyHorizontalBar
	case KindSalesMethod:
		return FamilyPie
	case KindRetailerPerformance:
		return FamilyRadar
	default:
		return ""
	}
}

// Title is the widget's card heading.
func (k Kind) Title() string {
	switch k {
	case KindMonthlyTrends:
		return "Monthly Sales Trends"
	case KindTopProducts:
		return "Top Products"
	case KindRegionDistribution:
		return "Sales by Region"
	case KindPriceCorrelation:
		return "Price vs Units Sold"
	case KindStateAnalysis:
		return "Sales by State"
	case KindSalesMethod:
		return "Sales Methods"
	case KindRetailerPerformance:
		return "Retailer Performance"
	default:
		return string(k)
	}
}

// Surface is the default drawing surface id for k.
func (k Kind) Surface() string {
	return string(k) + "-chart"
}

func (k Kind) String() string {
	return string(k)
}

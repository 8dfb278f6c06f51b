// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

// Package aggregate turns flat sales records into chart-ready series.
//
// Every function here is pure: records are read, never modified, and the
// same input always yields the same output. Empty input is not an error;
// each series has a placeholder form (a single "No Data" entry worth 0).
package aggregate

import (
	"slices"

	"github.com/tomtom215/salesboard/internal/models"
)

// KeyFunc extracts the grouping key of a record.
type KeyFunc func(r *models.SalesRecord) string

// Grouping keys.
var (
	ByProduct     KeyFunc = func(r *models.SalesRecord) string { return r.Product }
	ByRegion      KeyFunc = func(r *models.SalesRecord) string { return r.Region }
	ByState       KeyFunc = func(r *models.SalesRecord) string { return r.State }
	ByRetailer    KeyFunc = func(r *models.SalesRecord) string { return r.Retailer }
	BySalesMethod KeyFunc = func(r *models.SalesRecord) string { return r.SalesMethod }
)

// MonthlyTrend sums sales and units per (year, month). Every observed year
// gets all twelve months. Records without an invoice date are skipped.
func MonthlyTrend(records []models.SalesRecord) MonthlyTrendSeries {
	byYear := make(map[int]YearTrend)
	for i := range records {
		r := &records[i]
		if r.InvoiceDate.IsZero() {
			continue
		}
		y := r.InvoiceDate.Year()
		m := int(r.InvoiceDate.Month()) - 1

		t := byYear[y]
		t.Year = y
		t.Sales[m] += r.TotalSales
		t.Units[m] += r.UnitsSold
		byYear[y] = t
	}
	if len(byYear) == 0 {
		return monthlyPlaceholder()
	}
	return MonthlyTrendSeries{ByYear: byYear}
}

// group accumulates one RankEntry per key, in first-occurrence order.
func group(records []models.SalesRecord, key KeyFunc) []RankEntry {
	index := make(map[string]int)
	var entries []RankEntry
	priceSums := make([]float64, 0)

	for i := range records {
		r := &records[i]
		k := key(r)
		idx, ok := index[k]
		if !ok {
			idx = len(entries)
			index[k] = idx
			entries = append(entries, RankEntry{Key: k, Region: r.Region})
			priceSums = append(priceSums, 0)
		}
		e := &entries[idx]
		e.TotalSales += r.TotalSales
		e.UnitsSold += r.UnitsSold
		e.Transactions++
		priceSums[idx] += r.PricePerUnit
	}

	for i := range entries {
		entries[i].AvgPrice = safeDiv(priceSums[i], float64(entries[i].Transactions))
		entries[i].AvgPricePerUnit = safeDiv(entries[i].TotalSales, entries[i].UnitsSold)
	}
	return entries
}

// Ranked groups by key, sorts by total sales descending (ties keep
// first-occurrence order) and keeps at most limit entries.
func Ranked(records []models.SalesRecord, key KeyFunc, limit int) Ranking {
	return rank(group(records, key), limit)
}

// TopProducts ranks products, capped at TopProductsCap.
func TopProducts(records []models.SalesRecord) Ranking {
	r := Ranked(records, ByProduct, TopProductsCap)
	clearRegion(&r)
	return r
}

// TopStates ranks states, capped at TopStatesCap. Each entry keeps the first
// region seen for that state.
func TopStates(records []models.SalesRecord) Ranking {
	return Ranked(records, ByState, TopStatesCap)
}

// TopRetailers ranks retailers, capped at limit.
func TopRetailers(records []models.SalesRecord, limit int) Ranking {
	r := Ranked(records, ByRetailer, limit)
	clearRegion(&r)
	return r
}

func clearRegion(r *Ranking) {
	for i := range r.Entries {
		r.Entries[i].Region = ""
	}
}

// Distribute groups by key without sorting or truncation.
func Distribute(records []models.SalesRecord, key KeyFunc) Distribution {
	entries := group(records, key)
	if len(entries) == 0 {
		return distributionPlaceholder()
	}
	d := Distribution{
		Labels:       make([]string, len(entries)),
		Sales:        make([]float64, len(entries)),
		Units:        make([]float64, len(entries)),
		Transactions: make([]int, len(entries)),
	}
	for i, e := range entries {
		d.Labels[i] = e.Key
		d.Sales[i] = e.TotalSales
		d.Units[i] = e.UnitsSold
		d.Transactions[i] = e.Transactions
	}
	return d
}

// RegionDistribution breaks sales down by region.
func RegionDistribution(records []models.SalesRecord) Distribution {
	return Distribute(records, ByRegion)
}

// SalesMethodDistribution breaks sales down by sales method.
func SalesMethodDistribution(records []models.SalesRecord) Distribution {
	return Distribute(records, BySalesMethod)
}

// PriceCorrelation maps each record to (price per unit, units sold).
func PriceCorrelation(records []models.SalesRecord) ScatterSeries {
	if len(records) == 0 {
		return scatterPlaceholder()
	}
	pts := make([]Point, len(records))
	for i := range records {
		pts[i] = Point{X: records[i].PricePerUnit, Y: records[i].UnitsSold}
	}
	return ScatterSeries{Points: pts}
}

// Summarize computes the summary card values. AvgPricePerUnit is the mean
// Price per Unit over records, 0 for no records.
func Summarize(records []models.SalesRecord) Summary {
	s := Summary{TotalRecords: len(records)}
	products := make(map[string]struct{})
	regions := make(map[string]struct{})
	retailers := make(map[string]struct{})
	states := make(map[string]struct{})
	years := make(map[int]struct{})

	var priceSum float64
	for i := range records {
		r := &records[i]
		s.TotalSales += r.TotalSales
		s.TotalUnits += r.UnitsSold
		priceSum += r.PricePerUnit
		products[r.Product] = struct{}{}
		regions[r.Region] = struct{}{}
		retailers[r.Retailer] = struct{}{}
		states[r.State] = struct{}{}
		if !r.InvoiceDate.IsZero() {
			years[r.InvoiceDate.Year()] = struct{}{}
		}
	}

	s.AvgPricePerUnit = safeDiv(priceSum, float64(len(records)))
	s.UniqueProducts = len(products)
	s.UniqueRegions = len(regions)
	s.UniqueRetailers = len(retailers)
	s.UniqueStates = len(states)
	s.Years = make([]int, 0, len(years))
	for y := range years {
		s.Years = append(s.Years, y)
	}
	slices.Sort(s.Years)
	return s
}

// AggregateAll computes every widget's series from raw records. The
// retailer ranking uses the radar cap.
func AggregateAll(records []models.SalesRecord) Bundle {
	return Bundle{
		Summary:          Summarize(records),
		MonthlyTrends:    MonthlyTrend(records),
		TopProducts:      TopProducts(records),
		Regions:          RegionDistribution(records),
		PriceCorrelation: PriceCorrelation(records),
		States:           TopStates(records),
		SalesMethods:     SalesMethodDistribution(records),
		Retailers:        TopRetailers(records, RetailerRadarCap),
		Filtered:         true,
	}
}

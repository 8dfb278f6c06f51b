// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package aggregate

import (
	"slices"
	"strconv"

	"github.com/tomtom215/salesboard/internal/models"
)

// The converters below map the backend's pre-aggregated responses onto the
// same series types AggregateAll produces. Parallel arrays are clamped to
// their shortest length.

// FromSummary converts GET /summary.
func FromSummary(s *models.SummaryResponse) Summary {
	years := slices.Clone(s.DataPeriod.Years)
	slices.Sort(years)
	return Summary{
		TotalRecords:    s.TotalRecords,
		TotalSales:      s.TotalSales,
		TotalUnits:      s.TotalUnits,
		AvgPricePerUnit: s.AvgPricePerUnit,
		UniqueProducts:  s.UniqueProducts,
		UniqueRegions:   s.UniqueRegions,
		UniqueRetailers: s.UniqueRetailers,
		UniqueStates:    s.UniqueStates,
		Years:           years,
	}
}

// FromMonthlyTrends converts GET /monthly-trends. Months the backend omits
// stay 0; unparseable year keys and out-of-range months are skipped.
func FromMonthlyTrends(m models.MonthlyTrendsResponse) MonthlyTrendSeries {
	byYear := make(map[int]YearTrend, len(m))
	for key, trend := range m {
		y, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		t := YearTrend{Year: y}
		n := min(len(trend.Months), len(trend.Sales))
		for i := 0; i < n; i++ {
			month := trend.Months[i]
			if month < 1 || month > 12 {
				continue
			}
			t.Sales[month-1] += trend.Sales[i]
			if i < len(trend.Units) {
				t.Units[month-1] += trend.Units[i]
			}
		}
		byYear[y] = t
	}
	if len(byYear) == 0 {
		return monthlyPlaceholder()
	}
	return MonthlyTrendSeries{ByYear: byYear}
}

// FromTopProducts converts GET /top-products.
func FromTopProducts(t *models.TopProductsResponse) Ranking {
	entries := make([]RankEntry, 0, len(t.TopProducts))
	for _, p := range t.TopProducts {
		entries = append(entries, RankEntry{
			Key:             p.Product,
			TotalSales:      p.TotalSales,
			UnitsSold:       p.UnitsSold,
			Transactions:    p.Transactions,
			AvgPrice:        p.AvgPrice,
			AvgPricePerUnit: safeDiv(p.TotalSales, p.UnitsSold),
		})
	}
	return rank(entries, TopProductsCap)
}

// FromStates converts GET /state-analysis.
func FromStates(s *models.StateAnalysisResponse) Ranking {
	entries := make([]RankEntry, 0, len(s.StateAnalysis))
	for _, st := range s.StateAnalysis {
		avg := st.AvgPricePerUnit
		if avg == 0 {
			avg = safeDiv(st.TotalSales, st.UnitsSold)
		}
		entries = append(entries, RankEntry{
			Key:             st.State,
			TotalSales:      st.TotalSales,
			UnitsSold:       st.UnitsSold,
			Transactions:    st.Transactions,
			Region:          st.Region,
			AvgPricePerUnit: avg,
		})
	}
	return rank(entries, TopStatesCap)
}

// FromRetailers converts GET /retailer-analysis, capped at limit.
func FromRetailers(r *models.RetailerResponse, limit int) Ranking {
	n := min(len(r.Retailers), len(r.Sales))
	entries := make([]RankEntry, 0, n)
	for i := 0; i < n; i++ {
		e := RankEntry{Key: r.Retailers[i], TotalSales: r.Sales[i]}
		if i < len(r.Units) {
			e.UnitsSold = r.Units[i]
		}
		if i < len(r.Transactions) {
			e.Transactions = r.Transactions[i]
		}
		e.AvgPricePerUnit = safeDiv(e.TotalSales, e.UnitsSold)
		entries = append(entries, e)
	}
	return rank(entries, limit)
}

func distribution(labels []string, sales, units []float64, tx []int) Distribution {
	n := min(len(labels), len(sales))
	if n == 0 {
		return distributionPlaceholder()
	}
	d := Distribution{
		Labels:       slices.Clone(labels[:n]),
		Sales:        slices.Clone(sales[:n]),
		Units:        make([]float64, n),
		Transactions: make([]int, n),
	}
	copy(d.Units, units)
	copy(d.Transactions, tx)
	return d
}

// FromRegions converts GET /region-distribution.
func FromRegions(r *models.RegionDistributionResponse) Distribution {
	return distribution(r.Regions, r.Sales, r.Units, r.Transactions)
}

// FromSalesMethods converts GET /sales-method-analysis.
func FromSalesMethods(s *models.SalesMethodResponse) Distribution {
	return distribution(s.Methods, s.Sales, s.Units, s.Transactions)
}

// FromPriceCorrelation converts GET /price-correlation.
func FromPriceCorrelation(p *models.PriceCorrelationResponse) ScatterSeries {
	n := min(len(p.PricePerUnit), len(p.UnitsSold))
	if n == 0 {
		return scatterPlaceholder()
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{X: p.PricePerUnit[i], Y: p.UnitsSold[i]}
	}
	return ScatterSeries{Points: pts}
}

// FromBaseline converts the full unfiltered baseline.
func FromBaseline(b *models.Baseline) Bundle {
	return Bundle{
		Summary:          FromSummary(&b.Summary),
		MonthlyTrends:    FromMonthlyTrends(b.MonthlyTrends),
		TopProducts:      FromTopProducts(&b.TopProducts),
		Regions:          FromRegions(&b.Regions),
		PriceCorrelation: FromPriceCorrelation(&b.PriceCorrelation),
		States:           FromStates(&b.States),
		SalesMethods:     FromSalesMethods(&b.SalesMethods),
		Retailers:        FromRetailers(&b.Retailers, RetailerRadarCap),
	}
}

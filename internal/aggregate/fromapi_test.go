// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package aggregate

import (
	"slices"
	"testing"

	"github.com/tomtom215/salesboard/internal/models"
)

func TestFromMonthlyTrends_FillsMissingMonths(t *testing.T) {
	t.Parallel()

	resp := models.MonthlyTrendsResponse{
		"2022": {Months: []int{2, 5}, Sales: []float64{10, 20}, Units: []float64{1, 2}},
		"2021": {Months: []int{1}, Sales: []float64{3}},
	}
	got := FromMonthlyTrends(resp)
	if !slices.Equal(got.Years(), []int{2021, 2022}) {
		t.Fatalf("Years() = %v", got.Years())
	}
	y := got.ByYear[2022]
	if y.Sales[1] != 10 || y.Sales[4] != 20 || y.Units[4] != 2 || y.Sales[0] != 0 {
		t.Errorf("2022 buckets = %v / %v", y.Sales, y.Units)
	}
	if got.ByYear[2021].Units[0] != 0 {
		t.Errorf("missing units should stay 0")
	}

	if empty := FromMonthlyTrends(nil); !empty.Placeholder {
		t.Error("nil response should give the placeholder")
	}
}

func TestFromTopProducts_EmptyIsPlaceholder(t *testing.T) {
	t.Parallel()

	got := FromTopProducts(&models.TopProductsResponse{TopProducts: []models.ProductStat{}})
	if !got.Placeholder || got.Entries[0].Key != PlaceholderLabel || got.Entries[0].TotalSales != 0 {
		t.Errorf("got %+v", got)
	}
}

func TestFromTopProducts_RanksAndCaps(t *testing.T) {
	t.Parallel()

	resp := &models.TopProductsResponse{}
	for i := 0; i < 12; i++ {
		resp.TopProducts = append(resp.TopProducts, models.ProductStat{Product: string(rune('a' + i)), TotalSales: float64(i)})
	}
	got := FromTopProducts(resp)
	if len(got.Entries) != TopProductsCap || got.Entries[0].Key != "l" {
		t.Errorf("got %v", got.Labels())
	}
}

func TestFromRetailers_ClampsRaggedArrays(t *testing.T) {
	t.Parallel()

	resp := &models.RetailerResponse{
		Retailers: []string{"Walmart", "Amazon", "Kohl's"},
		Sales:     []float64{5, 15},
		Units:     []float64{1},
	}
	got := FromRetailers(resp, RetailerRadarCap)
	if !slices.Equal(got.Labels(), []string{"Amazon", "Walmart"}) {
		t.Errorf("Labels = %v", got.Labels())
	}
	if got.Entries[1].UnitsSold != 1 || got.Entries[0].UnitsSold != 0 {
		t.Errorf("units = %+v", got.Entries)
	}
}

func TestFromRegions(t *testing.T) {
	t.Parallel()

	d := FromRegions(&models.RegionDistributionResponse{
		Regions: []string{"West", "South"},
		Sales:   []float64{7, 3},
	})
	if d.Placeholder || d.Len() != 2 || d.Units[1] != 0 || d.Transactions[0] != 0 {
		t.Errorf("got %+v", d)
	}
	if !FromSalesMethods(&models.SalesMethodResponse{}).Placeholder {
		t.Error("empty methods should give the placeholder")
	}
}

func TestFromBaseline(t *testing.T) {
	t.Parallel()

	b := &models.Baseline{
		Summary:          models.SummaryResponse{TotalRecords: 9, DataPeriod: models.DataPeriod{Years: []int{2021, 2020}}},
		PriceCorrelation: models.PriceCorrelationResponse{PricePerUnit: []float64{1, 2}, UnitsSold: []float64{3, 4}},
		States:           models.StateAnalysisResponse{StateAnalysis: []models.StateStat{{State: "Ohio", TotalSales: 10, UnitsSold: 5}}},
	}
	got := FromBaseline(b)
	if got.Filtered {
		t.Error("baseline bundle should not be marked filtered")
	}
	if got.Summary.TotalRecords != 9 || !slices.Equal(got.Summary.Years, []int{2020, 2021}) {
		t.Errorf("summary = %+v", got.Summary)
	}
	if len(got.PriceCorrelation.Points) != 2 {
		t.Errorf("points = %v", got.PriceCorrelation.Points)
	}
	if got.States.Entries[0].AvgPricePerUnit != 2 {
		t.Errorf("derived avg = %v", got.States.Entries[0].AvgPricePerUnit)
	}
	if !got.TopProducts.Placeholder || !got.MonthlyTrends.Placeholder || !got.Regions.Placeholder {
		t.Error("missing sections should be placeholders")
	}
}

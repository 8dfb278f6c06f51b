// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package models

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tomtom215/salesboard/internal/validation"
)

// Sentinel errors.
var (
	ErrMalformedResponse = errors.New("malformed response")
	ErrUnknownDimension  = errors.New("unknown filter dimension")
)

// Validator is implemented by every response schema.
type Validator interface {
	Validate() error
}

func malformed(endpoint string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, endpoint, err)
}

func checkStruct(endpoint string, v any) error {
	if err := validation.ValidateStruct(v); err != nil {
		return malformed(endpoint, err)
	}
	return nil
}

// equalLen returns an error naming the first array whose length differs
// from the first one.
func equalLen(endpoint string, names []string, lens ...int) error {
	for i := 1; i < len(lens); i++ {
		if lens[i] != lens[0] {
			return malformed(endpoint, fmt.Errorf("%s has %d entries, %s has %d", names[i], lens[i], names[0], lens[0]))
		}
	}
	return nil
}

// optionalLen lets optional parallel arrays be absent but not short.
func optionalLen(n, want int) int {
	if n == 0 {
		return want
	}
	return n
}

// DataPeriod is the date range covered by the dataset.
type DataPeriod struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Years     []int  `json:"years"`
}

// SummaryResponse is GET /summary.
type SummaryResponse struct {
	TotalRecords    int        `json:"total_records" validate:"gte=0"`
	TotalSales      float64    `json:"total_sales"`
	TotalUnits      float64    `json:"total_units"`
	AvgPricePerUnit float64    `json:"avg_price_per_unit"`
	UniqueProducts  int        `json:"unique_products" validate:"gte=0"`
	UniqueRegions   int        `json:"unique_regions" validate:"gte=0"`
	UniqueRetailers int        `json:"unique_retailers,omitempty" validate:"gte=0"`
	UniqueStates    int        `json:"unique_states,omitempty" validate:"gte=0"`
	DataPeriod      DataPeriod `json:"data_period"`
}

// Validate implements Validator.
func (s *SummaryResponse) Validate() error {
	return checkStruct("/summary", s)
}

// MonthlyTrend holds one year's month buckets. The backend only lists months
// that had sales, so Months may have fewer than 12 entries.
type MonthlyTrend struct {
	Months []int     `json:"months" validate:"dive,gte=1,lte=12"`
	Sales  []float64 `json:"sales"`
	Units  []float64 `json:"units"`
}

// MonthlyTrendsResponse is GET /monthly-trends, keyed by year ("2021").
type MonthlyTrendsResponse map[string]MonthlyTrend

// Validate implements Validator.
func (m MonthlyTrendsResponse) Validate() error {
	const endpoint = "/monthly-trends"
	for key, trend := range m {
		if _, err := strconv.Atoi(key); err != nil {
			return malformed(endpoint, fmt.Errorf("year key %q is not a number", key))
		}
		if err := checkStruct(endpoint, &trend); err != nil {
			return err
		}
		if err := equalLen(endpoint, []string{"months", "sales", "units"},
			len(trend.Months), len(trend.Sales), optionalLen(len(trend.Units), len(trend.Months))); err != nil {
			return err
		}
	}
	return nil
}

// ProductStat is one entry of top_products.
type ProductStat struct {
	Product      string  `json:"product" validate:"required"`
	TotalSales   float64 `json:"total_sales"`
	UnitsSold    float64 `json:"units_sold"`
	Transactions int     `json:"transactions" validate:"gte=0"`
	AvgPrice     float64 `json:"avg_price,omitempty"`
}

// TopProductsSummary is the share held by the top products.
type TopProductsSummary struct {
	TotalProducts         int     `json:"total_products"`
	TotalSalesAll         float64 `json:"total_sales_all"`
	TopProductsSales      float64 `json:"top_products_sales"`
	TopProductsPercentage float64 `json:"top_products_percentage"`
}

// TopProductsResponse is GET /top-products.
type TopProductsResponse struct {
	TopProducts []ProductStat       `json:"top_products" validate:"dive"`
	Summary     *TopProductsSummary `json:"summary,omitempty"`
}

// Validate implements Validator.
func (t *TopProductsResponse) Validate() error {
	return checkStruct("/top-products", t)
}

// RegionDistributionResponse is GET /region-distribution.
type RegionDistributionResponse struct {
	Regions         []string  `json:"regions"`
	Sales           []float64 `json:"sales"`
	Units           []float64 `json:"units"`
	Transactions    []int     `json:"transactions"`
	AvgPrice        []float64 `json:"avg_price,omitempty"`
	SalesPercentage []float64 `json:"sales_percentage,omitempty"`
}

// Validate implements Validator.
func (r *RegionDistributionResponse) Validate() error {
	n := len(r.Regions)
	return equalLen("/region-distribution", []string{"regions", "sales", "units", "transactions"},
		n, len(r.Sales), optionalLen(len(r.Units), n), optionalLen(len(r.Transactions), n))
}

// PriceCorrelationResponse is GET /price-correlation.
type PriceCorrelationResponse struct {
	Correlation  float64   `json:"correlation"`
	PricePerUnit []float64 `json:"price_per_unit"`
	UnitsSold    []float64 `json:"units_sold"`
	SampleSize   int       `json:"sample_size,omitempty" validate:"gte=0"`
}

// Validate implements Validator.
func (p *PriceCorrelationResponse) Validate() error {
	if err := checkStruct("/price-correlation", p); err != nil {
		return err
	}
	return equalLen("/price-correlation", []string{"price_per_unit", "units_sold"}, len(p.PricePerUnit), len(p.UnitsSold))
}

// StateStat is one entry of state_analysis.
type StateStat struct {
	State           string  `json:"state" validate:"required"`
	TotalSales      float64 `json:"total_sales"`
	UnitsSold       float64 `json:"units_sold"`
	Region          string  `json:"region,omitempty"`
	Transactions    int     `json:"transactions" validate:"gte=0"`
	SalesPercentage float64 `json:"sales_percentage,omitempty"`
	AvgPricePerUnit float64 `json:"avg_price_per_unit,omitempty"`
}

// StateAnalysisResponse is GET /state-analysis.
type StateAnalysisResponse struct {
	StateAnalysis []StateStat `json:"state_analysis" validate:"dive"`
}

// Validate implements Validator.
func (s *StateAnalysisResponse) Validate() error {
	return checkStruct("/state-analysis", s)
}

// SalesMethodResponse is GET /sales-method-analysis.
type SalesMethodResponse struct {
	Methods      []string  `json:"methods"`
	Sales        []float64 `json:"sales"`
	Units        []float64 `json:"units,omitempty"`
	Transactions []int     `json:"transactions,omitempty"`
}

// Validate implements Validator.
func (s *SalesMethodResponse) Validate() error {
	n := len(s.Methods)
	return equalLen("/sales-method-analysis", []string{"methods", "sales", "units", "transactions"},
		n, len(s.Sales), optionalLen(len(s.Units), n), optionalLen(len(s.Transactions), n))
}

// RetailerResponse is GET /retailer-analysis.
type RetailerResponse struct {
	Retailers    []string  `json:"retailers"`
	Sales        []float64 `json:"sales"`
	Units        []float64 `json:"units,omitempty"`
	Transactions []int     `json:"transactions,omitempty"`
}

// Validate implements Validator.
func (r *RetailerResponse) Validate() error {
	n := len(r.Retailers)
	return equalLen("/retailer-analysis", []string{"retailers", "sales", "units", "transactions"},
		n, len(r.Sales), optionalLen(len(r.Units), n), optionalLen(len(r.Transactions), n))
}

// FilteredDataResponse is POST /filtered-data. FilteredData is capped by the
// backend (1000 rows) while TotalRecords counts every match.
type FilteredDataResponse struct {
	TotalRecords   int              `json:"total_records" validate:"gte=0"`
	FilteredData   []SalesRecord    `json:"filtered_data"`
	AppliedFilters *FilterSelection `json:"applied_filters,omitempty"`
}

// Validate implements Validator.
func (f *FilteredDataResponse) Validate() error {
	return checkStruct("/filtered-data", f)
}

// HealthResponse is the backend's GET /health.
type HealthResponse struct {
	Status    string `json:"status" validate:"required"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Validate implements Validator.
func (h *HealthResponse) Validate() error {
	return checkStruct("/health", h)
}

// Baseline is the unfiltered dashboard: the eight pre-aggregated responses
// fetched together on initial load.
type Baseline struct {
	Summary          SummaryResponse
	MonthlyTrends    MonthlyTrendsResponse
	TopProducts      TopProductsResponse
	Regions          RegionDistributionResponse
	PriceCorrelation PriceCorrelationResponse
	States           StateAnalysisResponse
	SalesMethods     SalesMethodResponse
	Retailers        RetailerResponse
}

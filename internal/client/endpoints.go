// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package client

import (
	"context"

	"github.com/tomtom215/salesboard/internal/models"
)

// Backend endpoint paths.
const (
	PathSummary          = "/summary"
	PathMonthlyTrends    = "/monthly-trends"
	PathTopProducts      = "/top-products"
	PathRegions          = "/region-distribution"
	PathPriceCorrelation = "/price-correlation"
	PathStateAnalysis    = "/state-analysis"
	PathSalesMethods     = "/sales-method-analysis"
	PathRetailers        = "/retailer-analysis"
	PathFilteredData     = "/filtered-data"
	PathHealth           = "/health"
)

// Summary calls GET /summary.
func (c *Client) Summary(ctx context.Context) (*models.SummaryResponse, error) {
	return get[models.SummaryResponse](ctx, c, PathSummary)
}

// MonthlyTrends calls GET /monthly-trends.
func (c *Client) MonthlyTrends(ctx context.Context) (models.MonthlyTrendsResponse, error) {
	m, err := get[models.MonthlyTrendsResponse](ctx, c, PathMonthlyTrends)
	if err != nil {
		return nil, err
	}
	return *m, nil
}

// TopProducts calls GET /top-products.
func (c *Client) TopProducts(ctx context.Context) (*models.TopProductsResponse, error) {
	return get[models.TopProductsResponse](ctx, c, PathTopProducts)
}

// RegionDistribution calls GET /region-distribution.
func (c *Client) RegionDistribution(ctx context.Context) (*models.RegionDistributionResponse, error) {
	return get[models.RegionDistributionResponse](ctx, c, PathRegions)
}

// PriceCorrelation calls GET /price-correlation.
func (c *Client) PriceCorrelation(ctx context.Context) (*models.PriceCorrelationResponse, error) {
	return get[models.PriceCorrelationResponse](ctx, c, PathPriceCorrelation)
}

// StateAnalysis calls GET /state-analysis.
func (c *Client) StateAnalysis(ctx context.Context) (*models.StateAnalysisResponse, error) {
	return get[models.StateAnalysisResponse](ctx, c, PathStateAnalysis)
}

// SalesMethods calls GET /sales-method-analysis.
func (c *Client) SalesMethods(ctx context.Context) (*models.SalesMethodResponse, error) {
	return get[models.SalesMethodResponse](ctx, c, PathSalesMethods)
}

// Retailers calls GET /retailer-analysis.
func (c *Client) Retailers(ctx context.Context) (*models.RetailerResponse, error) {
	return get[models.RetailerResponse](ctx, c, PathRetailers)
}

// FilteredData posts the selection and returns the matching records. The
// backend caps FilteredData at 1000 rows; TotalRecords is the full count.
func (c *Client) FilteredData(ctx context.Context, sel models.FilterSelection) (*models.FilteredDataResponse, error) {
	return post[models.FilteredDataResponse](ctx, c, PathFilteredData, sel)
}

// Health calls the backend's /health.
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	return get[models.HealthResponse](ctx, c, PathHealth)
}

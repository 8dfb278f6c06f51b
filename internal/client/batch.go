// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package client

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/salesboard/internal/models"
)

// LoadBaseline fetches the eight pre-aggregated endpoints in parallel. The
// first failure cancels the rest and no Baseline is returned.
func (c *Client) LoadBaseline(ctx context.Context) (*models.Baseline, error) {
	var b models.Baseline
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := c.Summary(gctx)
		if err == nil {
			b.Summary = *r
		}
		return err
	})
	g.Go(func() error {
		r, err := c.MonthlyTrends(gctx)
		if err == nil {
			b.MonthlyTrends = r
		}
		return err
	})
	g.Go(func() error {
		r, err := c.TopProducts(gctx)
		if err == nil {
			b.TopProducts = *r
		}
		return err
	})
	g.Go(func() error {
		r, err := c.RegionDistribution(gctx)
		if err == nil {
			b.Regions = *r
		}
		return err
	})
	g.Go(func() error {
		r, err := c.PriceCorrelation(gctx)
		if err == nil {
			b.PriceCorrelation = *r
		}
		return err
	})
	g.Go(func() error {
		r, err := c.StateAnalysis(gctx)
		if err == nil {
			b.States = *r
		}
		return err
	})
	g.Go(func() error {
		r, err := c.SalesMethods(gctx)
		if err == nil {
			b.SalesMethods = *r
		}
		return err
	})
	g.Go(func() error {
		r, err := c.Retailers(gctx)
		if err == nil {
			b.Retailers = *r
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load baseline: %w", err)
	}
	return &b, nil
}

// FilterOptions are the values offered by the four filter selectors.
type FilterOptions struct {
	Years     []int
	Regions   []string
	Products  []string
	Retailers []string
}

// LoadFilterOptions reads years from /summary and the other dimensions from
// the region, product and retailer endpoints.
func (c *Client) LoadFilterOptions(ctx context.Context) (*FilterOptions, error) {
	summary, err := c.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("load filter options: %w", err)
	}

	opts := &FilterOptions{Years: slices.Clone(summary.DataPeriod.Years)}
	slices.Sort(opts.Years)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := c.RegionDistribution(gctx)
		if err == nil {
			opts.Regions = slices.Clone(r.Regions)
		}
		return err
	})
	g.Go(func() error {
		r, err := c.TopProducts(gctx)
		if err == nil {
			for _, p := range r.TopProducts {
				opts.Products = append(opts.Products, p.Product)
			}
		}
		return err
	})
	g.Go(func() error {
		r, err := c.Retailers(gctx)
		if err == nil {
			opts.Retailers = slices.Clone(r.Retailers)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load filter options: %w", err)
	}
	return opts, nil
}

// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

// Command dashboard runs one headless dashboard session against the analytics
// API and prints the summary cards and every chart configuration as JSON.
//
//	dashboard -years 2020,2021 -regions West
//
// It exits non-zero when the dashboard fails to load.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/salesboard/internal/charts"
	"github.com/tomtom215/salesboard/internal/client"
	"github.com/tomtom215/salesboard/internal/config"
	"github.com/tomtom215/salesboard/internal/dashboard"
	"github.com/tomtom215/salesboard/internal/logging"
	"github.com/tomtom215/salesboard/internal/models"
)

type output struct {
	LastUpdated   string                   `json:"last_updated"`
	Filters       models.FilterSelection   `json:"filters"`
	Cards         []dashboard.SummaryCard  `json:"cards"`
	Charts        map[string]charts.Config `json:"charts"`
	FilterOptions *client.FilterOptions    `json:"filter_options,omitempty"`
	Notifications []string                 `json:"notifications,omitempty"`
}

func main() {
	var filters [4]string
	flag.StringVar(&filters[0], "years", "", "comma-separated years")
	flag.StringVar(&filters[1], "regions", "", "comma-separated regions")
	flag.StringVar(&filters[2], "products", "", "comma-separated products")
	flag.StringVar(&filters[3], "retailers", "", "comma-separated retailers")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})

	dims := []models.Dimension{
		models.DimensionYears, models.DimensionRegions,
		models.DimensionProducts, models.DimensionRetailers,
	}
	if err := run(context.Background(), cfg, dims, filters[:], os.Stdout); err != nil {
		logging.Error().Err(err).Msg("Dashboard failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, dims []models.Dimension, values []string, w io.Writer) error {
	api := client.New(client.Config{
		BaseURL:           cfg.APIBaseURL(),
		Timeout:           cfg.API.Timeout,
		MaxRetries:        cfg.API.MaxRetries,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Burst:             cfg.API.Burst,
	})
	session := dashboard.New(api, charts.NewMemoryRenderer(), dashboard.Config{
		LoadTimeout:     cfg.Dashboard.LoadTimeout,
		NotificationTTL: cfg.Dashboard.NotificationTTL,
	})
	defer func() {
		if err := session.Teardown(); err != nil {
			logging.Warn().Err(err).Msg("Dashboard teardown failed")
		}
	}()

	if err := session.Init(ctx); err != nil {
		return err
	}
	for i, dim := range dims {
		parts := splitList(values[i])
		if len(parts) == 0 {
			continue
		}
		if err := session.SetFilter(ctx, dim, parts); err != nil {
			return fmt.Errorf("apply %s filter: %w", dim, err)
		}
	}

	out := output{
		LastUpdated:   session.LastUpdated(),
		Filters:       session.Filters(),
		Cards:         session.Cards(),
		Charts:        make(map[string]charts.Config, len(charts.AllKinds())),
		FilterOptions: session.FilterOptions(),
	}
	for _, kind := range charts.AllKinds() {
		if h, ok := session.Chart(kind); ok {
			out.Charts[kind.String()] = h.Config()
		}
	}
	for _, n := range session.Notifications() {
		out.Notifications = append(out.Notifications, n.Message)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode dashboard: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

// Package config loads Salesboard configuration from defaults, an optional
// YAML file and environment variables (in that order of precedence, lowest first).
package config

import (
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Backend    BackendConfig    `koanf:"backend"`
	API        APIConfig        `koanf:"api"`
	Dashboard  DashboardConfig  `koanf:"dashboard"`
	Security   SecurityConfig   `koanf:"security"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Logging    LoggingConfig    `koanf:"logging"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig configures the static asset server.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	StaticDir       string        `koanf:"static_dir"`
}

// BackendConfig points at the analytics backend that /api/* redirects to.
type BackendConfig struct {
	URL string `koanf:"url"`
	// ProbeInterval is how often the server checks backend /health. Zero disables the probe.
	ProbeInterval time.Duration `koanf:"probe_interval"`
}

// APIConfig configures the dashboard's analytics client.
type APIConfig struct {
	// BaseURL is the single endpoint used for every dashboard call,
	// including filtered-data refreshes. Empty means Backend.URL.
	BaseURL           string        `koanf:"base_url"`
	Timeout           time.Duration `koanf:"timeout"`
	MaxRetries        int           `koanf:"max_retries"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
}

// DashboardConfig configures the dashboard session.
type DashboardConfig struct {
	LoadTimeout     time.Duration `koanf:"load_timeout"`
	NotificationTTL time.Duration `koanf:"notification_ttl"`
}

// SecurityConfig configures CORS and rate limiting on the server.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// MetricsConfig toggles the /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SupervisorConfig configures the suture tree.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
}

// Load reads configuration. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// APIBaseURL returns the effective dashboard API endpoint without a trailing slash.
func (c *Config) APIBaseURL() string {
	u := c.API.BaseURL
	if u == "" {
		u = c.Backend.URL
	}
	return strings.TrimRight(u, "/")
}

// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"json": true, "console": true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateBackend(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateDashboard(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.StaticDir == "" {
		return fmt.Errorf("STATIC_DIR must not be empty")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server read/write timeouts must be positive")
	}
	return nil
}

func (c *Config) validateBackend() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	if err := validateHTTPURL(c.Backend.URL, "BACKEND_URL"); err != nil {
		return err
	}
	if c.Backend.ProbeInterval < 0 {
		return fmt.Errorf("BACKEND_PROBE_INTERVAL must not be negative")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.BaseURL != "" {
		if err := validateHTTPURL(c.API.BaseURL, "API_BASE_URL"); err != nil {
			return err
		}
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %v", c.API.Timeout)
	}
	if c.API.MaxRetries < 0 {
		return fmt.Errorf("API_MAX_RETRIES must not be negative, got %d", c.API.MaxRetries)
	}
	if c.API.RequestsPerSecond < 0 {
		return fmt.Errorf("API_REQUESTS_PER_SECOND must not be negative")
	}
	return nil
}

func (c *Config) validateDashboard() error {
	if c.Dashboard.LoadTimeout <= 0 {
		return fmt.Errorf("LOAD_TIMEOUT must be positive, got %v", c.Dashboard.LoadTimeout)
	}
	if c.Dashboard.NotificationTTL <= 0 {
		return fmt.Errorf("NOTIFICATION_TTL must be positive, got %v", c.Dashboard.NotificationTTL)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.Security.RateLimitRequests)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	level := strings.ToLower(c.Logging.Level)
	if !validLogLevels[level] {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	format := strings.ToLower(c.Logging.Format)
	if !validLogFormats[format] {
		return fmt.Errorf("LOG_FORMAT must be json or console; got %q", c.Logging.Format)
	}
	return nil
}

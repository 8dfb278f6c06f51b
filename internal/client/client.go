// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

// Package client talks to the sales analytics API.
//
// Every call goes through a client-side rate limiter and a circuit breaker,
// and HTTP 429 responses are retried with exponential backoff (honouring
// Retry-After). Responses are decoded with goccy/go-json and validated
// before they are returned.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/salesboard/internal/logging"
	"github.com/tomtom215/salesboard/internal/metrics"
	"github.com/tomtom215/salesboard/internal/models"
)

// Config configures a Client.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	MaxRetries        int
	RequestsPerSecond float64
	Burst             int
	// RetryBaseDelay is the first 429 backoff; it doubles per attempt.
	RetryBaseDelay time.Duration
	// BreakerName labels the breaker's metrics.
	BreakerName string
	HTTPClient  *http.Client
}

// Client is safe for concurrent use.
type Client struct {
	baseURL        string
	http           *http.Client
	limiter        *rate.Limiter
	cb             *gobreaker.CircuitBreaker[*http.Response]
	maxRetries     int
	retryBaseDelay time.Duration
}

// New builds a Client. Zero values get defaults: 10s timeout, 3 retries,
// 1s base backoff and no client-side rate limit.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	if cfg.BreakerName == "" {
		cfg.BreakerName = "analytics-api"
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		http:           httpClient,
		limiter:        rate.NewLimiter(limit, burst),
		cb:             newBreaker(cfg.BreakerName),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
	}
}

// newBreaker opens after at least 5 requests with a 60% failure rate and
// probes again after 30s with up to 3 half-open requests. Calls cut short by
// the caller's context are not failures.
func newBreaker(name string) *gobreaker.CircuitBreaker[*http.Response] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		IsSuccessful: isBreakerSuccess,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= 0.6 {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", ratio*100).Msg("Opening analytics API circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// BaseURL returns the endpoint every call is sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends one logical request through the breaker. Non-2xx responses count
// as breaker failures and come back as *HTTPError.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	start := time.Now()
	resp, err := c.cb.Execute(func() (*http.Response, error) {
		resp, err := c.sendWithRetry(ctx, method, path, body)
		if err != nil {
			if ctx.Err() != nil {
				return nil, &callerDoneError{err: err}
			}
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			defer resp.Body.Close()
			return nil, &HTTPError{Method: method, Endpoint: path, StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
		}
		return resp, nil
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordClientRequest(path, "circuit_open", time.Since(start))
		return nil, fmt.Errorf("%w: %s %s", ErrCircuitOpen, method, path)
	case err != nil:
		metrics.RecordClientRequest(path, "error", time.Since(start))
		return nil, err
	}
	metrics.RecordClientRequest(path, "success", time.Since(start))
	return resp, nil
}

// sendWithRetry retries HTTP 429 with backoff base, 2*base, 4*base... or the
// server's Retry-After seconds when given.
func (c *Client) sendWithRetry(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	url := c.baseURL + path

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s %s: %w", method, path, err)
		}

		var rdr io.Reader = http.NoBody
		if body != nil {
			rdr = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, rdr)
		if err != nil {
			return nil, fmt.Errorf("create %s request: %w", path, err)
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if id := logging.RequestIDFromContext(ctx); id != "" {
			req.Header.Set("X-Request-ID", id)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", method, path, err)
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		_ = resp.Body.Close()

		if attempt >= c.maxRetries {
			return nil, fmt.Errorf("%w after %d retries: %s %s", ErrRateLimited, c.maxRetries, method, path)
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			if secs, err := strconv.Atoi(strings.TrimSpace(ra)); err == nil && secs >= 0 {
				delay = time.Duration(secs) * time.Second
			}
		}
		logging.Ctx(ctx).Debug().Str("path", path).Int("attempt", attempt+1).Dur("delay", delay).Msg("Rate limited, backing off")

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}
}

// decodeResponse decodes a 2xx body into T and validates it.
func decodeResponse[T any](resp *http.Response, endpoint string) (*T, error) {
	defer resp.Body.Close()

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %s: decode: %w", models.ErrMalformedResponse, endpoint, err)
	}
	if v, ok := any(&out).(models.Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func get[T any](ctx context.Context, c *Client, endpoint string) (*T, error) {
	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return decodeResponse[T](resp, endpoint)
}

func post[T any](ctx context.Context, c *Client, endpoint string, payload any) (*T, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s body: %w", endpoint, err)
	}
	resp, err := c.do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	return decodeResponse[T](resp, endpoint)
}

// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/salesboard/internal/logging"
	"github.com/tomtom215/salesboard/internal/metrics"
	"github.com/tomtom215/salesboard/internal/models"
)

// HealthChecker is the backend health endpoint. *client.Client implements it.
type HealthChecker interface {
	Health(ctx context.Context) (*models.HealthResponse, error)
}

// BackendProbeService pings the analytics backend every interval and records
// the result in the salesboard_backend_reachable gauge. Probe failures are
// logged on state change only and never stop the service.
type BackendProbeService struct {
	checker  HealthChecker
	interval time.Duration
	timeout  time.Duration

	reachable atomic.Bool
	probed    atomic.Bool
	probes    atomic.Int64
}

// NewBackendProbeService creates the probe. A non-positive interval means 30s.
func NewBackendProbeService(checker HealthChecker, interval time.Duration) *BackendProbeService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &BackendProbeService{checker: checker, interval: interval, timeout: timeout}
}

// Serve implements suture.Service. It probes once immediately and then on
// every tick until ctx is canceled.
func (p *BackendProbeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *BackendProbeService) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.checker.Health(probeCtx)
	ok := err == nil
	p.probes.Add(1)
	metrics.SetBackendReachable(ok)

	first := !p.probed.Swap(true)
	if prev := p.reachable.Swap(ok); !first && prev == ok {
		return
	}
	if ok {
		logging.Info().Str("status", resp.Status).Msg("Analytics backend reachable")
	} else if ctx.Err() == nil {
		logging.Warn().Err(err).Msg("Analytics backend unreachable")
	}
}

// Reachable reports the last probe result.
func (p *BackendProbeService) Reachable() bool {
	return p.reachable.Load()
}

// Probes returns how many probes have run.
func (p *BackendProbeService) Probes() int64 {
	return p.probes.Load()
}

// String names the service in supervisor logs.
func (p *BackendProbeService) String() string {
	return "backend-probe"
}

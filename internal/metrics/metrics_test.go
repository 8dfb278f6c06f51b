// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))

	RecordHTTPRequest("GET", "/health", "200", 5*time.Millisecond)
	RecordHTTPRequest("GET", "/health", "200", 7*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	if after-before != 2 {
		t.Errorf("expected 2 new requests, got %v", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(HTTPActiveRequests); got != before+1 {
		t.Errorf("after inc: got %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(HTTPActiveRequests); got != before {
		t.Errorf("after dec: got %v, want %v", got, before)
	}
}

func TestRecordDashboardLoad(t *testing.T) {
	tests := []struct {
		name   string
		mode   string
		err    error
		status string
	}{
		{"baseline success", "baseline", nil, "success"},
		{"baseline failure", "baseline", errors.New("boom"), "error"},
		{"filtered success", "filtered", nil, "success"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DashboardLoadsTotal.WithLabelValues(tt.mode, tt.status)
			before := testutil.ToFloat64(c)
			RecordDashboardLoad(tt.mode, tt.err)
			if got := testutil.ToFloat64(c); got != before+1 {
				t.Errorf("got %v, want %v", got, before+1)
			}
		})
	}
}

func TestSetBackendReachable(t *testing.T) {
	SetBackendReachable(true)
	if got := testutil.ToFloat64(BackendReachable); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
	SetBackendReachable(false)
	if got := testutil.ToFloat64(BackendReachable); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestRecordClientRequest(t *testing.T) {
	c := ClientRequestsTotal.WithLabelValues("/summary", "success")
	before := testutil.ToFloat64(c)
	RecordClientRequest("/summary", "success", 20*time.Millisecond)
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Errorf("got %v, want %v", got, before+1)
	}
}

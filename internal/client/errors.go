// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package client

import (
	"errors"
	"fmt"
	"io"
)

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = errors.New("analytics API circuit open")

// ErrRateLimited is returned when 429 retries are exhausted.
var ErrRateLimited = errors.New("analytics API rate limit exceeded")

// callerDoneError marks a failure caused by the caller's own context ending,
// such as a sibling fetch in LoadBaseline failing first. The breaker counts it
// as a success so self-cancellation never trips the circuit.
type callerDoneError struct{ err error }

func (e *callerDoneError) Error() string { return e.err.Error() }
func (e *callerDoneError) Unwrap() error { return e.err }

func isBreakerSuccess(err error) bool {
	var done *callerDoneError
	return err == nil || errors.As(err, &done)
}

// HTTPError is a non-2xx response.
type HTTPError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Body)
}

// maxErrorBodySize caps how much of an error body is kept.
const maxErrorBodySize = 64 * 1024

func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	if len(body) == maxErrorBodySize {
		return string(body) + "\n... (truncated)"
	}
	return string(body)
}

// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

// Package notify keeps the short-lived messages shown to the dashboard user.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/salesboard/internal/logging"
	"github.com/tomtom215/salesboard/internal/metrics"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 5 * time.Second

// Level of a notification.
type Level string

// Levels.
const (
	LevelError Level = "error"
	LevelInfo  Level = "info"
)

// Notification is one message.
type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// AfterFunc schedules f after d. It matches time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Stopper

// Stopper cancels a scheduled expiry.
type Stopper interface {
	Stop() bool
}

func realAfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAfterFunc replaces the expiry scheduler.
func WithAfterFunc(fn AfterFunc) Option {
	return func(n *Notifier) { n.afterFunc = fn }
}

// WithClock replaces time.Now for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

// Notifier is safe for concurrent use.
type Notifier struct {
	mu        sync.Mutex
	ttl       time.Duration
	active    []Notification
	timers    map[string]Stopper
	posted    int
	afterFunc AfterFunc
	now       func() time.Time
}

// New returns a Notifier whose messages expire after ttl (DefaultTTL if <= 0).
func New(ttl time.Duration, opts ...Option) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	n := &Notifier{
		ttl:       ttl,
		timers:    make(map[string]Stopper),
		afterFunc: realAfterFunc,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Error posts an error message and returns its ID.
func (n *Notifier) Error(msg string) string {
	return n.post(LevelError, msg)
}

// Info posts an informational message and returns its ID.
func (n *Notifier) Info(msg string) string {
	return n.post(LevelInfo, msg)
}

func (n *Notifier) post(level Level, msg string) string {
	note := Notification{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   msg,
		CreatedAt: n.now(),
	}

	n.mu.Lock()
	n.active = append(n.active, note)
	n.posted++
	n.timers[note.ID] = n.afterFunc(n.ttl, func() { n.expire(note.ID) })
	n.mu.Unlock()

	metrics.NotificationsTotal.WithLabelValues(string(level)).Inc()
	logging.Debug().Str("level", string(level)).Str("message", msg).Msg("Notification posted")
	return note.ID
}

func (n *Notifier) expire(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.removeLocked(id)
}

// Dismiss removes a notification before it expires.
func (n *Notifier) Dismiss(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if t, ok := n.timers[id]; ok {
		t.Stop()
	}
	return n.removeLocked(id)
}

func (n *Notifier) removeLocked(id string) bool {
	delete(n.timers, id)
	for i, note := range n.active {
		if note.ID == id {
			n.active = append(n.active[:i], n.active[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns the visible notifications, oldest first.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.active))
	copy(out, n.active)
	return out
}

// Count returns how many notifications were ever posted.
func (n *Notifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.posted
}

// Close cancels pending expiries and clears everything.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
	n.active = nil
}

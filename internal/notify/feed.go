// Package notify holds the short-lived toast messages shown to a session.
package notify

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/digital-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	"github.com/google/uuid"
)

// Sink accepts toasts fire-and-forget.
type Sink interface {
	Notify(ctx context.Context, message string, severity models.Severity)
}

type discard struct{}

func (discard) Notify(context.Context, string, models.Severity) {}

// Discard drops every toast.
var Discard Sink = discard{}

// Feed keeps each session's live toasts in memory. A toast disappears once
// its TTL has elapsed; expired toasts are pruned lazily on access.
type Feed struct {
	mu       sync.Mutex
	sessions map[string][]models.Toast
	ttl      time.Duration
	now      func() time.Time
}

func NewFeed(ttl time.Duration) *Feed {
	return &Feed{
		sessions: make(map[string][]models.Toast),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Push appends a toast for sessionID and returns it.
func (f *Feed) Push(sessionID, message string, severity models.Severity) models.Toast {
	now := f.now()

	toast := models.Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(f.ttl),
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.sessions[sessionID] = append(f.prune(sessionID, now), toast)

	return toast
}

// List returns the live toasts for sessionID, oldest first.
func (f *Feed) List(sessionID string) []models.Toast {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.prune(sessionID, f.now()))
}

// Dismiss reports whether a live toast with id was removed.
func (f *Feed) Dismiss(sessionID, id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	live := f.prune(sessionID, f.now())

	i := slices.IndexFunc(live, func(t models.Toast) bool { return t.ID == id })
	if i < 0 {
		return false
	}

	f.store(sessionID, slices.Delete(live, i, i+1))

	return true
}

// Sweep drops every expired toast and every session left without one.
func (f *Feed) Sweep() {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	for id := range f.sessions {
		f.prune(id, now)
	}
}

// For binds a Sink to one session.
func (f *Feed) For(sessionID string) Sink {
	return &sessionSink{feed: f, sessionID: sessionID}
}

// prune must be called with f.mu held.
func (f *Feed) prune(sessionID string, now time.Time) []models.Toast {
	live := slices.DeleteFunc(f.sessions[sessionID], func(t models.Toast) bool {
		return !now.Before(t.ExpiresAt)
	})

	f.store(sessionID, live)

	return live
}

func (f *Feed) store(sessionID string, toasts []models.Toast) {
	if len(toasts) == 0 {
		delete(f.sessions, sessionID)
		return
	}

	f.sessions[sessionID] = toasts
}

type sessionSink struct {
	feed      *Feed
	sessionID string
}

func (s *sessionSink) Notify(ctx context.Context, message string, severity models.Severity) {
	toast := s.feed.Push(s.sessionID, message, severity)

	middleware.LoggerFromContext(ctx).Debug("Toast queued",
		slog.String("session_id", s.sessionID),
		slog.String("toast_id", toast.ID),
		slog.String("severity", string(severity)),
	)
}

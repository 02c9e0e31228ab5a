package vidsage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/vidsage/vidsage-go/internal/api"
	"github.com/vidsage/vidsage-go/internal/types"
)

// History is the list view over the user's analysis sessions. Mutations hit
// the server first; the local collection changes only after success, so a
// failed delete leaves the view exactly as it was.
type History struct {
	c *Client

	mu       sync.RWMutex
	sessions []types.AnalysisSession

	// Confirm gates Delete. nil means proceed; returning false aborts the
	// deletion before any network call.
	Confirm func(s AnalysisSession) bool
}

// NewHistory builds an empty history view; call Load to populate it.
func (c *Client) NewHistory() *History {
	return &History{c: c}
}

// Load fetches the session collection into local state, replacing whatever
// was there.
func (h *History) Load(ctx context.Context) error {
	resp, err := api.GetHistory(ctx, h.c.caller)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.sessions = resp.Sessions
	h.mu.Unlock()
	return nil
}

// Sessions returns a snapshot of the unfiltered collection.
func (h *History) Sessions() []AnalysisSession {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]AnalysisSession(nil), h.sessions...)
}

// Filter returns the sessions whose title, transcript or summary contains
// query, case-insensitively. An empty query returns the full collection in
// order. Filtering never mutates the base collection, so it is idempotent
// and freely repeatable as the query changes.
func (h *History) Filter(query string) []AnalysisSession {
	h.mu.RLock()
	defer h.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]AnalysisSession(nil), h.sessions...)
	}
	out := make([]AnalysisSession, 0, len(h.sessions))
	for _, s := range h.sessions {
		if strings.Contains(strings.ToLower(s.Title), q) ||
			strings.Contains(strings.ToLower(s.Transcript), q) ||
			strings.Contains(strings.ToLower(s.Summary), q) {
			out = append(out, s)
		}
	}
	return out
}

// Delete removes one session: confirmation hook, then the server call, then
// the local edit. Declining the confirmation is a silent no-op.
func (h *History) Delete(ctx context.Context, sessionID string) error {
	h.mu.RLock()
	var target *AnalysisSession
	for i := range h.sessions {
		if h.sessions[i].ID == sessionID {
			s := h.sessions[i]
			target = &s
			break
		}
	}
	h.mu.RUnlock()
	if target == nil {
		return fmt.Errorf("unknown session %q", sessionID)
	}

	if h.Confirm != nil && !h.Confirm(*target) {
		return nil
	}

	if err := api.DeleteSession(ctx, h.c.caller, sessionID); err != nil {
		return err
	}

	h.mu.Lock()
	kept := h.sessions[:0]
	for _, s := range h.sessions {
		if s.ID != sessionID {
			kept = append(kept, s)
		}
	}
	h.sessions = kept
	h.mu.Unlock()

	h.c.notifier.Success("Session deleted")
	return nil
}

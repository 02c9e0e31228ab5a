package vidsage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewRequiresBaseURL(t *testing.T) {
	t.Parallel()
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()
	c, err := New("http://localhost:1")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestAwaitIdleFlushesQueuedJobs(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"conversation_id":7,"answer":"because"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, nil)
	q := c.NewQASession("s1", nil)
	if err := q.Ask(context.Background(), "why?"); err != nil {
		t.Fatalf("Ask: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.AwaitIdle(ctx, "s1"); err != nil {
		t.Fatalf("AwaitIdle: %v", err)
	}
	entries := q.Entries()
	if len(entries) != 1 || entries[0].Pending() {
		t.Fatalf("queue not flushed: %+v", entries)
	}
}

func TestAwaitIdleHonorsContext(t *testing.T) {
	t.Parallel()
	c, err := New("http://localhost:1")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.AwaitIdle(ctx, "s1"); err == nil {
		t.Fatal("expected cancelled context to surface")
	}
}

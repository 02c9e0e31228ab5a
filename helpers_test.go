package vidsage

import (
	"net/http/httptest"
	"sync"
	"testing"
)

// toastRecorder captures the transient notifications tests assert on.
type toastRecorder struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *toastRecorder) Success(msg string) {
	n.mu.Lock()
	n.successes = append(n.successes, msg)
	n.mu.Unlock()
}

func (n *toastRecorder) Error(msg string) {
	n.mu.Lock()
	n.errors = append(n.errors, msg)
	n.mu.Unlock()
}

func (n *toastRecorder) lastSuccess() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.successes) == 0 {
		return ""
	}
	return n.successes[len(n.successes)-1]
}

func (n *toastRecorder) errorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.errors)
}

// newTestClient wires a Client against srv with a download dir and the given
// notifier (NopNotifier when nil).
func newTestClient(t *testing.T, srv *httptest.Server, n Notifier, opts ...Option) *Client {
	t.Helper()
	if n == nil {
		n = NopNotifier{}
	}
	opts = append([]Option{WithNotifier(n), WithDownloadDir(t.TempDir())}, opts...)
	c, err := New(srv.URL, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

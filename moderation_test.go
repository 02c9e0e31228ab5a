package vidsage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func moderationServer(t *testing.T, deletes *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/contact":
			_, _ = w.Write([]byte(`{"messages":[
				{"id":1,"name":"Ada","email":"ada@example.com","message":"hi","is_read":false},
				{"id":2,"name":"Bob","email":"bob@example.com","message":"bye","is_read":true}
			]}`))
		case "/mark_message/1":
			_, _ = w.Write([]byte(`{"message":"ok"}`))
		case "/mark_message/2":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"mark failed"}`))
		case "/delete_message/1":
			if deletes != nil {
				deletes.Add(1)
			}
			_, _ = w.Write([]byte(`{"message":"ok"}`))
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))
}

func TestModeration_ToggleReadFlipsAfterServerAck(t *testing.T) {
	t.Parallel()
	srv := moderationServer(t, nil)
	defer srv.Close()

	rec := &toastRecorder{}
	m := newTestClient(t, srv, rec).NewModeration()
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := m.ToggleRead(context.Background(), 1); err != nil {
		t.Fatalf("ToggleRead: %v", err)
	}
	msgs := m.Messages()
	if !msgs[0].IsRead || !msgs[1].IsRead {
		t.Fatalf("after toggle: %+v", msgs)
	}
	if rec.lastSuccess() != "Message status updated" {
		t.Fatalf("success toast = %q", rec.lastSuccess())
	}
}

func TestModeration_FailedToggleLeavesFlag(t *testing.T) {
	t.Parallel()
	srv := moderationServer(t, nil)
	defer srv.Close()

	m := newTestClient(t, srv, nil).NewModeration()
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := m.ToggleRead(context.Background(), 2); err == nil {
		t.Fatal("expected server failure to surface")
	}
	if msgs := m.Messages(); !msgs[1].IsRead {
		t.Fatal("failed toggle mutated local state")
	}
}

func TestModeration_DeleteAfterConfirm(t *testing.T) {
	t.Parallel()
	srv := moderationServer(t, nil)
	defer srv.Close()

	rec := &toastRecorder{}
	m := newTestClient(t, srv, rec).NewModeration()
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	m.Confirm = func(msg ContactMessage) bool { return msg.ID == 1 }

	if err := m.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	msgs := m.Messages()
	if len(msgs) != 1 || msgs[0].ID != 2 {
		t.Fatalf("after delete: %+v", msgs)
	}
	if rec.lastSuccess() != "Message deleted successfully" {
		t.Fatalf("success toast = %q", rec.lastSuccess())
	}
}

func TestModeration_DeclinedConfirmSkipsNetwork(t *testing.T) {
	t.Parallel()
	var deletes atomic.Int32
	srv := moderationServer(t, &deletes)
	defer srv.Close()

	m := newTestClient(t, srv, nil).NewModeration()
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	m.Confirm = func(ContactMessage) bool { return false }

	if err := m.Delete(context.Background(), 1); err != nil {
		t.Fatalf("declined delete must be a silent no-op, got %v", err)
	}
	if deletes.Load() != 0 {
		t.Fatal("declined delete still hit the server")
	}
	if len(m.Messages()) != 2 {
		t.Fatal("declined delete mutated local state")
	}
}

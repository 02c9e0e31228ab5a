// Package mock exercises the SDK end to end against an in-process HTTP
// server, with the emphasis on session-cookie handling: the cookie set by
// /login must ride on every later request without the caller doing anything.
package mock

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	vidsage "github.com/vidsage/vidsage-go"
)

const sessionCookie = "vidsage_session"

// newBackend fakes just enough of the service: /login issues a session
// cookie, everything else rejects requests that do not carry it.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	authed := func(r *http.Request) bool {
		c, err := r.Cookie(sessionCookie)
		return err == nil && c.Value == "s3cret"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "s3cret", Path: "/"})
		_, _ = w.Write([]byte(`{"user":{"id":1,"username":"ada","email":"ada@example.com","is_admin":false}}`))
	})
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
		_, _ = w.Write([]byte(`{"message":"Logged out"}`))
	})
	mux.HandleFunc("/process", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Please log in"}`))
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		_, _ = w.Write([]byte(`{"session_id":"sess-1"}`))
	})
	mux.HandleFunc("/ask", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Please log in"}`))
			return
		}
		_, _ = w.Write([]byte(`{"conversation_id":11,"answer":"the gopher"}`))
	})
	mux.HandleFunc("/history", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Please log in"}`))
			return
		}
		_, _ = w.Write([]byte(`{"sessions":[{"id":"sess-1","title":"clip.mp4"}]}`))
	})
	mux.HandleFunc("/download_transcript/", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Please log in"}`))
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="clip_transcript.txt"`)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("full transcript text"))
	})
	return httptest.NewServer(mux)
}

func TestSessionCookieRidesOnEveryRequest(t *testing.T) {
	srv := newBackend(t)
	defer srv.Close()

	dir := t.TempDir()
	c, err := vidsage.New(srv.URL,
		vidsage.WithNotifier(vidsage.NopNotifier{}),
		vidsage.WithDownloadDir(dir),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	ctx := context.Background()

	// Unauthenticated requests are rejected with the server's message.
	if _, err := c.HistorySessions(ctx); err == nil {
		t.Fatal("expected unauthenticated /history to fail")
	} else if !strings.Contains(err.Error(), "Please log in") {
		t.Fatalf("error should carry the server message, got %v", err)
	}

	auth := c.NewAuth()
	if !auth.Login(ctx, "ada@example.com", "pw") {
		t.Fatal("login failed")
	}
	if !auth.IsAuthenticated() {
		t.Fatal("expected authenticated state after login")
	}

	// Upload: the cookie authenticates the multipart POST.
	form := vidsage.NewUploadForm()
	if err := form.AttachFile("clip.mp4", strings.NewReader("bytes")); err != nil {
		t.Fatalf("AttachFile: %v", err)
	}
	proc, err := form.Submit(ctx, c)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if proc.SessionID != "sess-1" {
		t.Fatalf("session id = %q", proc.SessionID)
	}

	// Q&A: the queued job's request carries the cookie as well.
	qa := c.NewQASession(proc.SessionID, nil)
	if err := qa.Ask(ctx, "who?"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := qa.Wait(waitCtx); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	entries := qa.Entries()
	if len(entries) != 1 || entries[0].Answer != "the gopher" || entries[0].ID != 11 {
		t.Fatalf("entries = %+v", entries)
	}

	// History is visible now.
	sessions, err := c.HistorySessions(ctx)
	if err != nil {
		t.Fatalf("HistorySessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != "sess-1" {
		t.Fatalf("sessions = %+v", sessions)
	}

	// Transcript download lands in the configured directory under the
	// server-suggested name.
	dl, err := c.DownloadTranscript(ctx, proc.SessionID)
	if err != nil {
		t.Fatalf("DownloadTranscript: %v", err)
	}
	if dl.Filename != "clip_transcript.txt" {
		t.Fatalf("filename = %q", dl.Filename)
	}
	data, err := os.ReadFile(filepath.Join(dir, dl.Filename))
	if err != nil {
		t.Fatalf("read download: %v", err)
	}
	if string(data) != "full transcript text" {
		t.Fatalf("download content = %q", data)
	}

	// Logout drops server-side auth; the next call is rejected again.
	auth.Logout(ctx)
	if auth.IsAuthenticated() {
		t.Fatal("expected unauthenticated state after logout")
	}
	if _, err := c.HistorySessions(ctx); err == nil {
		t.Fatal("expected post-logout /history to fail")
	}
}

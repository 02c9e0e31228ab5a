package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vidsage/vidsage-go/internal/types"
)

func TestListContactMessages_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/contact" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"messages":[{"id":1,"name":"n","email":"n@x.com","message":"hi","is_read":false}]}`))
	}))
	defer srv.Close()

	resp, err := ListContactMessages(context.Background(), newCaller(t, srv))
	if err != nil {
		t.Fatalf("ListContactMessages error: %v", err)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].ID != 1 {
		t.Fatalf("unexpected messages: %+v", resp.Messages)
	}
}

func TestMarkMessage_GetsByID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/mark_message/5" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"updated"}`))
	}))
	defer srv.Close()

	if err := MarkMessage(context.Background(), newCaller(t, srv), 5); err != nil {
		t.Fatalf("MarkMessage error: %v", err)
	}
}

func TestDeleteMessage_Posts(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/delete_message/5" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"deleted"}`))
	}))
	defer srv.Close()

	if err := DeleteMessage(context.Background(), newCaller(t, srv), 5); err != nil {
		t.Fatalf("DeleteMessage error: %v", err)
	}
}

func TestSubmitContactForm_Validation(t *testing.T) {
	t.Parallel()
	dummy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	defer dummy.Close()

	c := newCaller(t, dummy)
	err := SubmitContactForm(context.Background(), c, types.ContactRequest{Name: "", Email: "e@x.com", Message: "m"})
	if err == nil {
		t.Fatal("expected validation error for blank name")
	}
}

func TestSubmitContactForm_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/contact" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req types.ContactRequest
		_ = jsonDecode(r, &req)
		if req.Message != "hello there" {
			t.Fatalf("unexpected body: %+v", req)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"received"}`))
	}))
	defer srv.Close()

	err := SubmitContactForm(context.Background(), newCaller(t, srv), types.ContactRequest{Name: "n", Email: "e@x.com", Message: "hello there"})
	if err != nil {
		t.Fatalf("SubmitContactForm error: %v", err)
	}
}

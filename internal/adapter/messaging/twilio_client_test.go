package messaging

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSendMessage_PostsForm(t *testing.T) {
	var gotPath, gotFrom, gotTo, gotBody string
	var gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, _, _ = r.BasicAuth()
		r.ParseForm()
		gotFrom = r.PostFormValue("From")
		gotTo = r.PostFormValue("To")
		gotBody = r.PostFormValue("Body")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewTwilioClient("AC123", "token", "whatsapp:+14155238886", time.Second)
	c.apiBase = srv.URL

	if err := c.SendMessage(context.Background(), "+919812345678", "hello"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if gotPath != "/Accounts/AC123/Messages.json" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if gotUser != "AC123" {
		t.Errorf("expected basic auth user AC123, got %s", gotUser)
	}
	if gotFrom != "whatsapp:+14155238886" || gotTo != "whatsapp:+919812345678" || gotBody != "hello" {
		t.Errorf("unexpected form: from=%s to=%s body=%s", gotFrom, gotTo, gotBody)
	}
}

func TestSendMessage_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"bad number"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewTwilioClient("AC123", "token", "whatsapp:+14155238886", time.Second)
	c.apiBase = srv.URL

	if err := c.SendMessage(context.Background(), "+91", "hello"); err == nil {
		t.Fatal("expected error for 4xx response")
	}
}

func TestSendMessage_Unconfigured(t *testing.T) {
	c := NewTwilioClient("", "", "", time.Second)
	if err := c.SendMessage(context.Background(), "+919812345678", "hello"); err != nil {
		t.Errorf("unconfigured client should drop silently, got %v", err)
	}
}

func TestSendMessage_ContextTimeout(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		// Drain the body so the server starts its background read and
		// can observe the client disconnect, cancelling r.Context().
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewTwilioClient("AC123", "token", "whatsapp:+14155238886", time.Minute)
	c.apiBase = srv.URL

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := c.SendMessage(ctx, "+919812345678", "hello"); err == nil {
		t.Fatal("expected context deadline error")
	}
	<-started
}

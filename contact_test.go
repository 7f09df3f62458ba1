package folio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestContactRelaySend(t *testing.T) {
	var got ContactMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	relay := NewContactRelay(srv.URL, srv.Client())
	msg := ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
	if err := relay.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got != msg {
		t.Errorf("forwarded %+v, want %+v", got, msg)
	}
}

func TestContactRelaySendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	relay := NewContactRelay(srv.URL, srv.Client())
	if err := relay.Send(context.Background(), ContactMessage{Name: "a", Email: "a@b.c", Message: "m"}); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

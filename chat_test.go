package folio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChatRelaySendPayload(t *testing.T) {
	var got chatPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Write([]byte(`{"output":"hi there"}`))
	}))
	defer srv.Close()

	relay := NewChatRelay(srv.URL, srv.Client())
	reply, err := relay.Send(context.Background(), "abc123", "hello")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if reply != "hi there" {
		t.Errorf("reply = %q, want %q", reply, "hi there")
	}
	if got.SessionID != "abc123" || got.Action != "sendMessage" || got.ChatInput != "hello" {
		t.Errorf("payload = %+v", got)
	}
}

func TestExtractReply(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"output key", `{"output":"a"}`, "a"},
		{"reply key", `{"reply":"b"}`, "b"},
		{"message key", `{"message":"c"}`, "c"},
		{"answer key", `{"answer":"d"}`, "d"},
		{"text key", `{"text":"e"}`, "e"},
		{"key priority", `{"text":"low","output":"high"}`, "high"},
		{"one element array", `[{"output":"wrapped"}]`, "wrapped"},
		{"json string", `"plain"`, "plain"},
		{"raw text", "not json at all", "not json at all"},
		{"unknown object", `{"foo":"bar"}`, `{"foo":"bar"}`},
		{"empty value skipped", `{"output":"","reply":"fallback"}`, "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractReply([]byte(tt.body)); got != tt.want {
				t.Errorf("extractReply(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestChatRelaySendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	relay := NewChatRelay(srv.URL, srv.Client())
	if _, err := relay.Send(context.Background(), "s", "m"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestNewChatSessionID(t *testing.T) {
	id := NewChatSessionID()
	if len(id) != 32 {
		t.Errorf("len = %d, want 32", len(id))
	}
	if strings.Contains(id, "-") {
		t.Errorf("session id %q contains dashes", id)
	}
	if id == NewChatSessionID() {
		t.Error("session ids should be unique")
	}
}

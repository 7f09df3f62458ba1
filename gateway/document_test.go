package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"

	"github.com/folio-sh/folio/content"
)

// docServer is an in-memory stand-in for the hosted document endpoint:
// GET returns the stored body (null when unset), PUT replaces it.
type docServer struct {
	mu   sync.Mutex
	body []byte
}

func (s *docServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			if s.body == nil {
				w.Write([]byte("null"))
				return
			}
			w.Write(s.body)
		case http.MethodPut:
			body, err := io.ReadAll(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			s.body = body
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func TestDocumentGatewayRoundTrip(t *testing.T) {
	srv := httptest.NewServer((&docServer{}).handler())
	defer srv.Close()

	g := NewDocumentGateway(srv.URL, nil)
	ctx := context.Background()
	want := content.Defaults()

	if err := g.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	doc, err := g.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got := doc.Merge(content.Defaults())
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load after Save mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestDocumentGatewayEmptyStore(t *testing.T) {
	for name, body := range map[string]string{
		"null body":  "null",
		"empty body": "",
		"empty doc":  "{}",
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()
			g := NewDocumentGateway(srv.URL, nil)
			if _, err := g.Load(context.Background()); !errors.Is(err, ErrEmpty) {
				t.Errorf("Load = %v, want ErrEmpty", err)
			}
		})
	}
}

func TestDocumentGatewayNotFoundIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	g := NewDocumentGateway(srv.URL, nil)
	if _, err := g.Load(context.Background()); !errors.Is(err, ErrEmpty) {
		t.Errorf("Load on 404 = %v, want ErrEmpty", err)
	}
}

func TestDocumentGatewayServerErrorIsHardFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	g := NewDocumentGateway(srv.URL, nil)
	if _, err := g.Load(context.Background()); err == nil || errors.Is(err, ErrEmpty) {
		t.Errorf("Load on 500 = %v, want hard error", err)
	}
	if err := g.Save(context.Background(), content.Defaults()); err == nil {
		t.Error("Save on 500 should fail")
	}
}

func TestDocumentGatewayPartialDocumentTolerated(t *testing.T) {
	partial := map[string]any{
		"posts": []content.Post{{Slug: "only-post", Title: "Only", Date: "2024-01-01"}},
	}
	payload, _ := json.Marshal(partial)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	g := NewDocumentGateway(srv.URL, nil)
	doc, err := g.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defaults := content.Defaults()
	got := doc.Merge(defaults)
	if len(got.Posts) != 1 || got.Posts[0].Slug != "only-post" {
		t.Errorf("posts not taken from the document: %+v", got.Posts)
	}
	if got.Profile != defaults.Profile {
		t.Error("absent profile should fall back to the default")
	}
	if len(got.Skills) != len(defaults.Skills) {
		t.Error("absent skills should fall back to the defaults")
	}
}

func TestDocumentGatewayUnreachableHost(t *testing.T) {
	g := NewDocumentGateway("http://127.0.0.1:1/document.json", nil)
	if _, err := g.Load(context.Background()); err == nil {
		t.Error("Load against an unreachable host should fail")
	}
}

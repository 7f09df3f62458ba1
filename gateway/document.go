package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/folio-sh/folio/content"
)

// DefaultTimeout bounds a single load or save round-trip.
const DefaultTimeout = 15 * time.Second

// DocumentGateway talks to a hosted JSON document endpoint: GET returns the
// whole aggregate (or null when unset), PUT replaces it. There is no partial
// update verb.
type DocumentGateway struct {
	url    string
	client *http.Client
}

// NewDocumentGateway creates a gateway for the given document URL. A nil
// client gets a default with DefaultTimeout.
func NewDocumentGateway(url string, client *http.Client) *DocumentGateway {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &DocumentGateway{url: url, client: client}
}

// Load fetches the remote document. A 404, an empty body, or a JSON null all
// mean the store has never been written and yield ErrEmpty. Any other
// non-success status is a hard failure for this call.
func (g *DocumentGateway) Load(ctx context.Context) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway: fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrEmpty
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway: fetch document: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gateway: read document: %w", err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, ErrEmpty
	}
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("gateway: parse document: %w", err)
	}
	if doc.Empty() {
		return nil, ErrEmpty
	}
	return &doc, nil
}

// Save overwrites the entire remote document. All-or-nothing at document
// granularity; no retry.
func (g *DocumentGateway) Save(ctx context.Context, a *content.Aggregate) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("gateway: encode document: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, g.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("gateway: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: put document: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gateway: put document: status %d", resp.StatusCode)
	}
	return nil
}

// Package remotebin talks to the remote key-value document store. One bin
// holds the whole aggregate document: every synced record key is a top-level
// property of a single JSON object, fetched and replaced as a unit.
//
// Any failure, whether network, HTTP status or a malformed body, is reported
// uniformly as ErrUnavailable so the gateway can fall back to local data.
package remotebin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
)

// DefaultBaseURL is the production endpoint of the bin provider.
const DefaultBaseURL = "https://api.jsonbin.io/v3"

const masterKeyHeader = "X-Master-Key"

// Document is the aggregate document: record keys mapped to their raw JSON
// values. Unknown keys are carried through untouched so writers never drop
// data domains they do not own.
type Document map[string]json.RawMessage

// Client is the remote side of the persistence gateway.
type Client interface {
	// Fetch retrieves the full aggregate document.
	Fetch(ctx context.Context, s *models.CloudSettings) (Document, error)
	// Put replaces the full aggregate document.
	Put(ctx context.Context, s *models.CloudSettings, doc Document) error
}

// BinClient implements Client over plain HTTP.
type BinClient struct {
	baseURL string
	http    *http.Client
}

// NewBinClient returns a client bound to baseURL (DefaultBaseURL if empty)
// with the given per-call timeout.
func NewBinClient(baseURL string, timeout time.Duration) *BinClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &BinClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// fetchEnvelope mirrors the provider's response shape: the document itself
// is wrapped under a "record" property.
type fetchEnvelope struct {
	Record Document `json:"record"`
}

func (c *BinClient) Fetch(ctx context.Context, s *models.CloudSettings) (Document, error) {
	url := fmt.Sprintf("%s/b/%s/latest", c.baseURL, s.BinID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set(masterKeyHeader, s.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var env fetchEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if env.Record == nil {
		env.Record = Document{}
	}
	return env.Record, nil
}

func (c *BinClient) Put(ctx context.Context, s *models.CloudSettings, doc Document) error {
	url := fmt.Sprintf("%s/b/%s", c.baseURL, s.BinID)

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(masterKeyHeader, s.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

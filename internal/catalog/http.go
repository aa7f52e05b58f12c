package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient implements Client over the JSON API:
//
//	GET {base}/products
//	GET {base}/events
//	GET {base}/health
type HTTPClient struct {
	base string
	hc   *http.Client
}

// NewHTTPClient returns an HTTPClient for the given base URL. timeout bounds
// each request on top of the caller's context.
func NewHTTPClient(base string, timeout time.Duration) (*HTTPClient, error) {
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid catalog base url %q: %w", base, err)
	}
	return &HTTPClient{
		base: base,
		hc:   &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) Events(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.getJSON(ctx, "/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.getJSON(ctx, "/health", nil)
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// getJSON performs GET base+path and decodes the body into v (skipped when v
// is nil). Transport failures map to ErrUnavailable; other failures are
// wrapped with the path for context.
func (c *HTTPClient) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog request %s: unexpected status %d", path, resp.StatusCode)
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

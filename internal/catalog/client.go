package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the upstream catalog fetch adapter. Every request carries the
// caller's context so a navigated-away client cancels the upstream call; a
// stale response can never overwrite a newer one because nothing is cached.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchList GETs a list endpoint and unwraps the known envelope shapes.
func (c *Client) FetchList(ctx context.Context, path, pluralKey string) ([]map[string]any, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return UnwrapList(body, pluralKey), nil
}

// FetchItem GETs a detail endpoint and unwraps the entity object.
func (c *Client) FetchItem(ctx context.Context, path string) (map[string]any, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return UnwrapItem(body), nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog returned status %d for %s", resp.StatusCode, path)
	}

	return io.ReadAll(resp.Body)
}

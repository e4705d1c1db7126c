// Package jnet is a minimal client for the game server's history-export
// endpoint. It only fetches raw bytes; parsing and normalization stay in
// the upload package.
package jnet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public game server.
const DefaultBaseURL = "https://www.jinteki.net"

// Client fetches a user's complete game-history export.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the given server base URL ("" for the
// public default).
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// FetchHistory downloads the raw history export for username. The body is
// returned as-is; it may be plain or compressed JSON.
func (c *Client) FetchHistory(ctx context.Context, username string) ([]byte, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	u := fmt.Sprintf("%s/profile/%s/games.json", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("no history for user %q", username)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch history: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read history body: %w", err)
	}
	return body, nil
}

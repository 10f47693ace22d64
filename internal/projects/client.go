package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client fetches the project list from the project API.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL. A nil httpClient uses
// http.DefaultClient.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: httpClient,
	}
}

// URL returns the full project list URL, or "" when no endpoint is set.
func (c *Client) URL() string {
	if c.endpoint == "" {
		return ""
	}
	base := c.endpoint
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + "projects"
}

// List issues a single GET for the project list. There is no retry.
func (c *Client) List(ctx context.Context) ([]Project, error) {
	url := c.URL()
	if url == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call project API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("project API returned status %d", resp.StatusCode)
	}

	return decodeProjects(body)
}

// decodeProjects requires a JSON array but does not validate the records in
// it: a record with a mistyped field keeps whatever did decode.
func decodeProjects(body []byte) ([]Project, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode project list: %w", err)
	}
	if raw == nil {
		return nil, errors.New("project API returned null instead of a list")
	}

	out := make([]Project, 0, len(raw))
	for i, item := range raw {
		var p Project
		if err := json.Unmarshal(item, &p); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				return nil, fmt.Errorf("failed to decode project %d: %w", i, err)
			}
		}
		out = append(out, p)
	}
	return out, nil
}

package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultAPIURL is the public contributions API the calendar reads from.
const DefaultAPIURL = "https://github-contributions-api.jogruber.de"

// Client reads contribution data for a GitHub user.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type contributionsResponse struct {
	Contributions []Day `json:"contributions"`
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Fetch returns the last year of contributions for username, oldest first.
func (c *Client) Fetch(ctx context.Context, username string) ([]Day, error) {
	u := fmt.Sprintf("%s/v4/%s?y=last", c.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call contributions API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("contributions API returned status %d", resp.StatusCode)
	}

	var body contributionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode contributions: %w", err)
	}
	return body.Contributions, nil
}

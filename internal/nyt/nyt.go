// Package nyt fetches the daily puzzle manifest.
package nyt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://www.nytimes.com/svc/wordle/v2"

// Manifest describes one day's puzzle.
type Manifest struct {
	ID              int    `json:"id"`
	Solution        string `json:"solution"`
	PrintDate       string `json:"print_date"`
	DaysSinceLaunch int    `json:"days_since_launch"`
	Editor          string `json:"editor,omitempty"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// URL returns the manifest address for the calendar day of day, in day's location.
func (c *Client) URL(day time.Time) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return fmt.Sprintf("%s/%s.json", base, day.Format(time.DateOnly))
}

// Daily fetches the manifest for day.
func (c *Client) Daily(ctx context.Context, day time.Time) (Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(day), nil)
	if err != nil {
		return Manifest{}, err
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return Manifest{}, fmt.Errorf("fetching manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Manifest{}, fmt.Errorf("fetching manifest: %s", resp.Status)
	}

	var m Manifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("decoding manifest: %w", err)
	}
	if m.Solution == "" {
		return Manifest{}, fmt.Errorf("manifest for %s has no solution", day.Format(time.DateOnly))
	}
	return m, nil
}

// Package places provides a thin client for the Google Places text search
// API. Failures are returned as errors; callers treat them as "no results"
// and fall back to locally-derived data.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Config holds client construction options.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Client queries the places text search endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Place is one raw provider record, already flattened.
type Place struct {
	Name string
	Tags []string
	Lat  float64
	Lng  float64
}

// NewClient builds a places client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("places: api key is required")
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{apiKey: cfg.APIKey, baseURL: baseURL, httpClient: httpClient}, nil
}

// TextSearch runs one free-text query such as "vegan restaurants in Houston".
func (c *Client) TextSearch(ctx context.Context, query string) ([]Place, error) {
	if c == nil {
		return nil, fmt.Errorf("places: client is nil")
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("places: query is required")
	}

	values := url.Values{}
	values.Set("query", query)
	values.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/textsearch/json?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("places: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places: API error (%d)", resp.StatusCode)
	}

	var payload textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places: decode response: %w", err)
	}

	switch payload.Status {
	case "OK", "ZERO_RESULTS":
	default:
		return nil, fmt.Errorf("places: API status %s", payload.Status)
	}

	out := make([]Place, 0, len(payload.Results))
	for _, result := range payload.Results {
		out = append(out, Place{
			Name: result.Name,
			Tags: result.Types,
			Lat:  result.Geometry.Location.Lat,
			Lng:  result.Geometry.Location.Lng,
		})
	}

	return out, nil
}

type textSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name     string   `json:"name"`
		Types    []string `json:"types"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

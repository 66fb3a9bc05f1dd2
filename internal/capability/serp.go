package capability

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/wmsConsultant/backend/internal/config"
)

// SerpClient searches the web via a SerpAPI-compatible endpoint.
type SerpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewSerpClient(cfg config.SearchConfig) *SerpClient {
	return &SerpClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

func (c *SerpClient) Configured() bool { return c.apiKey != "" }

func (c *SerpClient) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if c.apiKey == "" {
		return nil, ErrUnavailable
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("num", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call search api: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search api status %d", resp.StatusCode)
	}

	var parsed struct {
		OrganicResults []SearchResult `json:"organic_results"`
	}
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	results := parsed.OrganicResults
	if len(results) > 3 {
		results = results[:3]
	}
	return results, nil
}

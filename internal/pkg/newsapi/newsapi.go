package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"netlease/internal/models"
)

// Client queries the external news search service for recent company
// mentions. News lookups are independent of the tenant directory: a
// failure here never blocks a directory read.
type Client struct {
	baseURL string
	key     string
	client  *http.Client
}

// ErrNoNews means the service answered but had no usable results.
var ErrNoNews = errors.New("newsapi: no news found")

// LookupError reports a failed news search.
type LookupError struct {
	Status int
	Err    error
}

func (e *LookupError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("newsapi: lookup failed with status %d", e.Status)
	}
	return fmt.Sprintf("newsapi: lookup failed: %v", e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

type searchResponse struct {
	Status  string               `json:"status"`
	Results []models.NewsArticle `json:"results"`
}

func New(baseURL, key string) *Client {
	return &Client{
		baseURL: baseURL,
		key:     key,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// UseDefaultClient switches to http.DefaultClient so tests can install a
// mock transport.
func (c *Client) UseDefaultClient() {
	c.client = http.DefaultClient
}

// Search returns English-language articles mentioning the company.
func (c *Client) Search(ctx context.Context, company string) ([]models.NewsArticle, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &LookupError{Err: err}
	}

	q := u.Query()
	q.Set("apikey", c.key)
	q.Set("q", company)
	q.Set("language", "en")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &LookupError{Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &LookupError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LookupError{Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &LookupError{Status: resp.StatusCode, Err: errors.New(string(body))}
	}

	var out searchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &LookupError{Status: resp.StatusCode, Err: err}
	}

	if out.Status != "success" || out.Results == nil {
		return nil, ErrNoNews
	}

	return out.Results, nil
}

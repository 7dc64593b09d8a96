package grist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the Grist document API that backs the tenant directory.
type Client struct {
	baseURL string
	table   string
	key     string
	client  *http.Client
}

// Record is one raw row of the tenant table. Fields is an open map of
// loosely-typed values; the normalizer is the only consumer of its exact
// shape and nothing else should reach into it.
type Record struct {
	ID     int64          `json:"id"`
	Fields map[string]any `json:"fields"`
}

type recordsResponse struct {
	Records []Record `json:"records"`
}

// FetchError reports a failed records fetch. Status is zero when the
// request never produced a response.
type FetchError struct {
	Status int
	Body   string
}

func (e *FetchError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("grist: fetch failed: %s", e.Body)
	}
	return fmt.Sprintf("grist: fetch failed with status %d: %s", e.Status, e.Body)
}

func New(baseURL, table, key string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		table:   table,
		key:     key,
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// UseDefaultClient switches to http.DefaultClient so tests can install a
// mock transport.
func (c *Client) UseDefaultClient() {
	c.client = http.DefaultClient
}

// GetRecords fetches every row of the tenant table.
func (c *Client) GetRecords(ctx context.Context) ([]Record, error) {
	endpoint := fmt.Sprintf("%s/tables/%s/records", c.baseURL, url.PathEscape(c.table))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Status: resp.StatusCode, Body: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Status: resp.StatusCode, Body: string(body)}
	}

	var out recordsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &FetchError{Status: resp.StatusCode, Body: err.Error()}
	}

	// Minimal structural check: a valid response always carries a
	// records array, even an empty one.
	if out.Records == nil {
		return nil, &FetchError{Status: resp.StatusCode, Body: "response missing records array"}
	}

	return out.Records, nil
}

// Package supabase implements the hosted-backend ports against the Supabase
// REST surface: PostgREST for per-user rows and GoTrue for authentication.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal Supabase REST client. It performs exactly one network
// call per operation and applies no retries; failures are returned as wrapped
// errors for the application layer to degrade on.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the given project URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client.
// This constructor is intended for testing against an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// selectRows issues a PostgREST read for the user's rows in table, ordered by
// orderClause (e.g. "date.desc"), limited to limit, decoding into out.
func (c *Client) selectRows(ctx context.Context, table, userID, orderClause string, limit int, out any) error {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("user_id", "eq."+userID)
	q.Set("order", orderClause)
	q.Set("limit", fmt.Sprintf("%d", limit))

	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build select %s: %w", table, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", table, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("select %s: status %d: %s", table, resp.StatusCode, truncate(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s rows: %w", table, err)
	}
	return nil
}

// insertRow issues a PostgREST insert of one row into table.
func (c *Client) insertRow(ctx context.Context, table string, row any) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("marshal %s row: %w", table, err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build insert %s: %w", table, err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("insert %s: status %d: %s", table, resp.StatusCode, truncate(body))
	}
	return nil
}

// setHeaders attaches the project API key headers PostgREST and GoTrue expect.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

// truncate caps an error body for inclusion in error messages.
func truncate(body []byte) string {
	const max = 200
	s := string(body)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// Package supabase implements the persistence interfaces against a
// hosted Supabase project over its PostgREST API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tastesaigon/curator/internal/common"
	"github.com/tastesaigon/curator/internal/service"
)

const (
	defaultPageSize   = 1000
	defaultChunkSize  = 50
	defaultChunkDelay = 200 * time.Millisecond
)

// Config holds the connection settings for a Supabase project.
type Config struct {
	URL            string
	ServiceRoleKey string
	// PageSize bounds read pagination; ChunkSize and ChunkDelay bound
	// collection membership writes, respecting PostgREST payload and
	// rate limits.
	PageSize   int
	ChunkSize  int
	ChunkDelay time.Duration
}

// Client talks to the Supabase REST API with the service role key.
type Client struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
	pageSize   int
	chunkSize  int
	chunkDelay time.Duration
	retryOpts  service.RetryOptions
}

// NewClient creates a Supabase client from config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: supabase URL", common.ErrMissingConfig)
	}
	if cfg.ServiceRoleKey == "" {
		return nil, fmt.Errorf("%w: supabase service role key", common.ErrMissingConfig)
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = defaultChunkSize
	}
	if cfg.ChunkDelay <= 0 {
		cfg.ChunkDelay = defaultChunkDelay
	}

	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    cfg.URL + "/rest/v1/",
		serviceKey: cfg.ServiceRoleKey,
		pageSize:   cfg.PageSize,
		chunkSize:  cfg.ChunkSize,
		chunkDelay: cfg.ChunkDelay,
		retryOpts:  service.RetryOptions{MaxAttempts: 3, InitialDelay: 500 * time.Millisecond},
	}, nil
}

// Close satisfies service.Store; the HTTP client holds no resources
// that need explicit teardown.
func (c *Client) Close() error { return nil }

func (c *Client) do(ctx context.Context, method, table string, params url.Values, body any, prefer string) ([]byte, error) {
	u := c.baseURL + table
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s payload: %w", table, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", common.ErrSupabaseRequest, method, table, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", table, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: %s %s", common.ErrSupabaseRateLimit, method, table)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s: %d - %s",
			common.ErrSupabaseRequest, method, table, resp.StatusCode, truncate(string(data), 300))
	}
	return data, nil
}

// getPaged fetches all rows of a table page by page, decoding each page
// into a fresh []T and accumulating the results.
func getPaged[T any](ctx context.Context, c *Client, table string, params url.Values) ([]T, error) {
	var all []T
	offset := 0
	for {
		p := url.Values{}
		for k, v := range params {
			p[k] = v
		}
		p.Set("offset", strconv.Itoa(offset))
		p.Set("limit", strconv.Itoa(c.pageSize))

		var page []T
		err := common.WithRetry(ctx, func() error {
			data, reqErr := c.do(ctx, http.MethodGet, table, p, nil, "")
			if reqErr != nil {
				return reqErr
			}
			page = nil
			return json.Unmarshal(data, &page)
		}, c.retryOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to page %s at offset %d: %w", table, offset, err)
		}

		all = append(all, page...)
		if len(page) < c.pageSize {
			return all, nil
		}
		offset += c.pageSize
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

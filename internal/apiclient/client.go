package apiclient

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

	"github.com/practiceos/console/pkg/errors"
	"github.com/practiceos/console/pkg/metrics"
)

// Config holds upstream client configuration.
type Config struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Client talks to the platform REST API. Authenticated endpoints identify the
// session with a bearer-style token passed as the user_token query parameter,
// which is how the upstream expects it.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *metrics.Metrics
}

// NewClient creates an upstream client. metrics may be nil.
func NewClient(cfg Config, m *metrics.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		metrics: m,
	}
}

// upstreamError is the upstream's error body. FastAPI routes use detail,
// older routes use message; either is the canonical user-facing text.
type upstreamError struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (e upstreamError) text() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Internal(fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Internal(fmt.Errorf("build request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(method, path, "error", start)
		return errors.NewUpstream("", fmt.Errorf("%s %s: %w", method, path, err))
	}
	defer resp.Body.Close()

	c.observe(method, path, fmt.Sprintf("%d", resp.StatusCode), start)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewUpstream("", fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var ue upstreamError
		_ = json.Unmarshal(raw, &ue)
		return errors.NewUpstream(ue.text(), fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.NewUpstream("", fmt.Errorf("decode response: %w", err))
		}
	}
	return nil
}

// doAuthed is do with the user_token parameter attached. It fails before any
// network I/O when the token is empty.
func (c *Client) doAuthed(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	if token == "" {
		return errors.NewMissingAuth()
	}
	if query == nil {
		query = url.Values{}
	}
	query.Set("user_token", token)
	return c.do(ctx, method, path, query, body, out)
}

func (c *Client) observe(method, path, status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.UpstreamRequests.WithLabelValues(method, path, status).Inc()
	c.metrics.UpstreamLatency.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
}

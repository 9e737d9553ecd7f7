// Package upstream is the shared JSON-over-HTTP GET client used by the
// PokeAPI and API-NBA adapters.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/okian/explorer/pkg/logger"
	"github.com/okian/explorer/pkg/metrics"
)

// maxBodyBytes caps how much of a response is read.
const maxBodyBytes = 8 << 20

// Client issues GET requests against one API base URL.
type Client struct {
	api     string
	base    *url.URL
	http    *http.Client
	timeout time.Duration
	headers http.Header
	log     logger.Logger
}

// New builds a client for the API named api rooted at baseURL.
func New(api, baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrBaseURL, baseURL)
	}
	c := &Client{
		api:     api,
		base:    base,
		http:    http.DefaultClient,
		headers: make(http.Header),
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.headers.Set("Accept", "application/json")
	return c, nil
}

// API is the name used in logs and metrics.
func (c *Client) API() string { return c.api }

// BaseURL is the configured root.
func (c *Client) BaseURL() string { return c.base.String() }

// Resolve turns ref into an absolute URL. Relative refs are joined onto the
// base path; absolute refs must point at the base host.
func (c *Client) Resolve(ref string, query url.Values) (*url.URL, error) {
	target, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformed, ref, err)
	}
	if target.IsAbs() {
		if !strings.EqualFold(target.Host, c.base.Host) {
			return nil, fmt.Errorf("%w: %s", ErrForeignURL, ref)
		}
	} else {
		target = c.base.JoinPath(target.Path)
	}
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}
	return target, nil
}

// GetJSON fetches ref and decodes the body into out. endpoint labels the
// request in logs and metrics.
func (c *Client) GetJSON(ctx context.Context, endpoint, ref string, query url.Values, out any) error {
	start := time.Now()
	err := c.get(ctx, ref, query, out)
	latency := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.RecordUpstreamRequest(c.api, endpoint, Outcome(err), latency)

	if err != nil {
		metrics.RecordErrorByComponent(c.api, Outcome(err))
		c.log.Debug(ctx, "upstream request failed",
			logger.String("endpoint", endpoint),
			logger.String("ref", ref),
			logger.Float64("latency_ms", latency),
			logger.Error(err),
		)
		return err
	}
	c.log.Debug(ctx, "upstream request",
		logger.String("endpoint", endpoint),
		logger.String("ref", ref),
		logger.Float64("latency_ms", latency),
	)
	return nil
}

func (c *Client) get(ctx context.Context, ref string, query url.Values, out any) error {
	target, err := c.Resolve(ref, query)
	if err != nil {
		return err
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header = c.headers.Clone()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &StatusError{API: c.api, URL: target.String(), Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrTransport, target, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformed, target, err)
	}
	return nil
}

package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"birchwood/internal/debuglog"
	"birchwood/internal/domain"
)

const (
	// DefaultTimeout bounds a whole fetch, body included.
	DefaultTimeout = 15 * time.Second
	// DefaultMaxBodySize caps a response body; larger bodies are malformed.
	// The gallery inlines every photo as base64, so deployments with many
	// full-size photos raise it with WithMaxBodySize.
	DefaultMaxBodySize = 10 << 20

	dialTimeout = 5 * time.Second
	userAgent   = "birchwood-client/1"
)

// Client fetches content over HTTP. The base URL is fixed at construction.
type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
	maxBody int64
	log     *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default transport, e.g. for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the per-fetch timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxBodySize sets the largest accepted response body in bytes.
// Non-positive values keep DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = debuglog.Component(l, "content") }
}

// NewHTTP builds a client for the service rooted at base, e.g. https://example.org.
func NewHTTP(base string, opts ...Option) (*Client, error) {
	u, err := parseBase(base)
	if err != nil {
		return nil, err
	}
	c := &Client{
		base:    u,
		timeout: DefaultTimeout,
		maxBody: DefaultMaxBodySize,
		log:     debuglog.Component(nil, "content"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = newHTTPClient(c.timeout)
	}
	return c, nil
}

func parseBase(base string) (*url.URL, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return nil, fmt.Errorf("content: base url is empty")
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("content: parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("content: base url %q must be http or https", base)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("content: base url %q has no host", base)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery, u.Fragment = "", ""
	return u, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   dialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          16,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: time.Second,
		},
	}
}

// BaseURL returns the service root this client was built with.
func (c *Client) BaseURL() string { return c.base.String() }

// Timeout returns the per-fetch timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// MaxBodySize returns the response body cap in bytes.
func (c *Client) MaxBodySize() int64 { return c.maxBody }

// Get fetches req and decodes the body into out, which must be a pointer.
// If out implements domain.Normalizer it is normalized after decoding.
func (c *Client) Get(ctx context.Context, req domain.ContentRequest, out any) error {
	res := req.Resource()
	reqID := uuid.NewString()
	fail := func(kind domain.ErrorKind, status int, err error) error {
		return &FetchError{Kind: kind, Resource: res, Status: status, RequestID: reqID, Err: err}
	}
	if !res.Known() {
		return fail(domain.ErrServerError, 0, fmt.Errorf("%w %q", ErrUnknownResource, string(res)))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.base.JoinPath(req.Path()).String()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fail(domain.ErrNetworkUnavailable, 0, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("X-Request-ID", reqID)

	started := time.Now()
	c.log.Debug("fetch start", "resource", res, "url", u, "request_id", reqID)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		kind := classifyTransport(err)
		c.log.Debug("fetch transport error", "resource", res, "request_id", reqID,
			"kind", kind, "detail", describeTransport(err))
		return fail(kind, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return fail(domain.ErrServerError, resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return fail(classifyTransport(err), 0, fmt.Errorf("read body: %w", err))
	}
	switch {
	case len(body) == 0:
		return fail(domain.ErrMalformedResponse, 0, fmt.Errorf("empty body"))
	case int64(len(body)) > c.maxBody:
		return fail(domain.ErrMalformedResponse, 0, fmt.Errorf("body exceeds %d bytes", c.maxBody))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fail(domain.ErrMalformedResponse, 0, fmt.Errorf("decode: %w", err))
	}
	if n, ok := out.(domain.Normalizer); ok {
		if err := n.Normalize(); err != nil {
			return fail(domain.ErrMalformedResponse, 0, err)
		}
	}

	c.log.Debug("fetch done", "resource", res, "request_id", reqID,
		"bytes", len(body), "elapsed", time.Since(started))
	return nil
}

var _ domain.ContentClient = (*Client)(nil)

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty string means no session is available.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource for a fixed token, mainly useful in tests and
// one-shot CLI invocations.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token() string { return string(t) }

const (
	defaultUserAgent = "drip/0.1"
	requestTimeout   = 15 * time.Second
)

// Client talks to the Dripdirective HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	tokens    TokenSource
	retry     RetryPolicy

	onUnauthorized func()
	unauthOnce     sync.Once
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTokenSource attaches a session token provider.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithRetryPolicy overrides the retry behavior.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) { c.retry = p }
}

// WithOnUnauthorized registers a hook fired the first time an authenticated
// request comes back 401, so the caller can clear stored credentials.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// NewClient builds a Client for the given API base URL. A bare host:port is
// accepted and normalized to http.
func NewClient(apiURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
		retry:     DefaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// NormalizeURL returns the canonical form of an API base URL, the same form
// BaseURL reports. Callers that key state by endpoint (the credential store)
// use this so "localhost:8000" and "http://localhost:8000/" collapse to one
// entry.
func NormalizeURL(apiURL string) (string, error) {
	u, err := parseBaseURL(apiURL)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// request describes one logical API call. body, when set, must return a fresh
// reader on every invocation so retries can replay the payload.
type request struct {
	method      string
	rel         *url.URL
	contentType string
	body        func() (io.Reader, error)
	dest        any
	noAuth      bool
}

func relPath(path string) *url.URL {
	return &url.URL{Path: path}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dest any) error {
	rel := &url.URL{Path: path}
	if query != nil {
		rel.RawQuery = query.Encode()
	}
	return c.do(ctx, request{method: http.MethodGet, rel: rel, dest: dest})
}

func (c *Client) postJSON(ctx context.Context, path string, payload, dest any) error {
	return c.sendJSON(ctx, http.MethodPost, path, payload, dest, false)
}

func (c *Client) putJSON(ctx context.Context, path string, payload, dest any) error {
	return c.sendJSON(ctx, http.MethodPut, path, payload, dest, false)
}

// postJSONNoAuth is for signup and login, which must not carry a stale token.
func (c *Client) postJSONNoAuth(ctx context.Context, path string, payload, dest any) error {
	return c.sendJSON(ctx, http.MethodPost, path, payload, dest, true)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, dest any, noAuth bool) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, request{
		method:      method,
		rel:         &url.URL{Path: path},
		contentType: "application/json",
		body:        func() (io.Reader, error) { return strings.NewReader(string(encoded)), nil },
		dest:        dest,
		noAuth:      noAuth,
	})
}

func (c *Client) deleteResource(ctx context.Context, path string) error {
	return c.do(ctx, request{method: http.MethodDelete, rel: &url.URL{Path: path}})
}

// do executes a request with auth injection, request tagging, retry with
// backoff, and error normalization.
func (c *Client) do(ctx context.Context, req request) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	reqURL := c.baseURL.ResolveReference(req.rel)
	requestID := uuid.NewString()

	attempts := c.retry.MaxRetries + 1
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			delay := c.retry.backoff(attempt - 1)
			if ra := lastRetryAfter(lastErr); ra > 0 {
				delay = ra
			}
			if err := sleep(ctx, delay); err != nil {
				return err
			}
		}

		var body io.Reader
		if req.body != nil {
			var err error
			body, err = req.body()
			if err != nil {
				return fmt.Errorf("prepare request body: %w", err)
			}
		}

		httpReq, err := http.NewRequestWithContext(ctx, req.method, reqURL.String(), body)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		httpReq.Header.Set("Accept", "application/json")
		httpReq.Header.Set("User-Agent", c.userAgent)
		httpReq.Header.Set("X-Request-ID", requestID)
		if req.contentType != "" {
			httpReq.Header.Set("Content-Type", req.contentType)
		}
		if !req.noAuth && c.tokens != nil {
			if token := c.tokens.Token(); token != "" {
				httpReq.Header.Set("Authorization", "Bearer "+token)
			}
		}

		resp, err := c.http.Do(httpReq)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = fmt.Errorf("execute request: %w", err)
			continue
		}

		if resp.StatusCode < 300 {
			err := decodeBody(resp, req.dest)
			_ = resp.Body.Close()
			return err
		}

		apiErr := newAPIError(resp, requestID)
		_ = resp.Body.Close()

		if resp.StatusCode == http.StatusUnauthorized && !req.noAuth {
			c.fireUnauthorized()
			return apiErr
		}
		if !retryableStatus(resp.StatusCode) {
			return apiErr
		}
		lastErr = &retryableError{apiErr: apiErr, after: retryAfter(resp)}
	}

	if re, ok := lastErr.(*retryableError); ok {
		return re.apiErr
	}
	return lastErr
}

// retryableError keeps the normalized error plus any server-requested delay
// between attempts.
type retryableError struct {
	apiErr *APIError
	after  time.Duration
}

func (e *retryableError) Error() string { return e.apiErr.Error() }

func lastRetryAfter(err error) time.Duration {
	if re, ok := err.(*retryableError); ok {
		return re.after
	}
	return 0
}

func decodeBody(resp *http.Response, dest any) error {
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) fireUnauthorized() {
	if c.onUnauthorized == nil {
		return
	}
	c.unauthOnce.Do(c.onUnauthorized)
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		return nil, fmt.Errorf("api url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", apiURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

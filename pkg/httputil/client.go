package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rg089/plotex/pkg/observability"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultAttempts = 1
	defaultDelay    = time.Second

	// maxBodySize bounds a fetched style file.
	maxBodySize = 1 << 20
)

var (
	// ErrNotFound is returned when the server answers 404.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-200 responses).
	ErrNetwork = errors.New("network error")

	// ErrTooLarge is returned when a response body exceeds maxBodySize.
	ErrTooLarge = errors.New("response too large")
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithAttempts sets how many times a transient failure is tried in total.
// Values below 1 mean a single attempt.
func WithAttempts(n int) ClientOption {
	return func(c *Client) { c.attempts = max(n, 1) }
}

// WithRetryDelay sets the initial delay between attempts.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *Client) { c.delay = d }
}

// WithHeader sets a header sent with every request.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) { c.headers[key] = value }
}

// Client fetches text resources over HTTP.
type Client struct {
	http     *http.Client
	headers  map[string]string
	attempts int
	delay    time.Duration
}

// NewClient creates a Client with a 10 second timeout and one attempt.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		http:     &http.Client{Timeout: defaultTimeout},
		headers:  map[string]string{"User-Agent": "plotex"},
		attempts: defaultAttempts,
		delay:    defaultDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetText performs an HTTP GET request and returns the response body as a
// string. Bodies over 1 MiB fail with ErrTooLarge.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	var text string
	err := Retry(ctx, c.attempts, c.delay, func() error {
		body, err := c.doRequest(ctx, url)
		if err != nil {
			return err
		}
		defer body.Close()

		data, err := io.ReadAll(io.LimitReader(body, maxBodySize+1))
		if err != nil {
			return &RetryableError{Err: fmt.Errorf("%w: read body: %v", ErrNetwork, err)}
		}
		if len(data) > maxBodySize {
			return fmt.Errorf("%w: body exceeds %d bytes", ErrTooLarge, maxBodySize)
		}
		text = string(data)
		return nil
	})
	return text, err
}

func (c *Client) doRequest(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}

	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return &RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

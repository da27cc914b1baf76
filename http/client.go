// Package http provides HTTP implementations of the compass service
// interfaces against the Compass backend's JSON API.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/compass"
	"github.com/google/uuid"
)

// API paths relative to the base URL.
const (
	SearchCasesPath = "/api/search_cases"
	CoachPath       = "/api/coach"
	CasesPath       = "/api/cases/"
	HealthPath      = "/health"
)

// RequestIDHeader carries a unique id per request so client and server logs
// can be correlated.
const RequestIDHeader = "X-Request-ID"

// Client sends JSON requests to the backend. It is safe for concurrent use.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for each request.
// Defaults to no timeout; callers bound requests through their context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the underlying HTTP client. The client's timeout is
// replaced when WithTimeout is also given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a new Client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{}
	}
	if c.timeout > 0 {
		hc := *c.client
		hc.Timeout = c.timeout
		c.client = &hc
	}

	return c
}

// BaseURL returns the backend address requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends a request with an optional JSON body. The caller closes the
// response body.
func (c *Client) do(ctx context.Context, method, path string, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	return c.client.Do(req)
}

// decode reads a JSON response body into out.
func decode(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return compass.Errorf(compass.EINTERNAL, "invalid response from %s: %s", resp.Request.URL.Path, err)
	}
	return nil
}

// isSuccess reports whether the status is 2xx.
func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// statusError returns an application error for a failed response. The
// message is prefix followed by the status code.
func statusError(status int, prefix string) error {
	return compass.Errorf(errorCode(status), "%s: %d", prefix, status)
}

// errorCode maps an HTTP status to an application error code.
func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return compass.EINVALID
	case http.StatusNotFound:
		return compass.ENOTFOUND
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return compass.EUNAVAILABLE
	default:
		return compass.EINTERNAL
	}
}

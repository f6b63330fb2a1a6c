// Package api implements the HTTP client for the remote inventory and
// sales service. The service owns all authoritative records; this client
// only moves JSON and maps transport and status failures onto the shared
// error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
	"github.com/storemate/storemate-cli/pkg/logger"
)

const errorBodyReadLimit int64 = 4096

var errBaseURLRequired = errors.New("api base url is required")

// Client talks to the remote inventory and sales API. Authentication is a
// session cookie captured at sign-in and replayed on every request.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	log           *logger.Logger
	sessionCookie string
	onAuthExpired func()
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger attaches a structured logger for request diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithSessionCookie seeds the client with a previously saved session cookie.
func WithSessionCookie(cookie string) Option {
	return func(c *Client) {
		c.sessionCookie = strings.TrimSpace(cookie)
	}
}

// WithAuthExpiredHook registers a callback invoked whenever the remote
// service answers 401. The hook is the client-side analogue of the
// sign-in redirect: it runs before the error is returned to the caller.
func WithAuthExpiredHook(hook func()) Option {
	return func(c *Client) {
		c.onAuthExpired = hook
	}
}

// NewClient builds a client for the service rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// SetSessionCookie replaces the session cookie replayed on requests.
func (c *Client) SetSessionCookie(cookie string) {
	c.sessionCookie = strings.TrimSpace(cookie)
}

// send executes one request and maps failures onto typed errors. On
// success the response is returned with its body still open; callers own
// closing it.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode request body")
		}
		payload = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionCookie != "" {
		req.Header.Set("Cookie", c.sessionCookie)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if c.log != nil {
		lctx := c.log.WithRequestID(ctx, requestID)
		c.log.Debug(c.log.WithFields(lctx, map[string]any{"method": method, "path": path}), "api request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnreachable, err, "")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()
		message := readErrorMessage(resp.Body)

		if resp.StatusCode == http.StatusUnauthorized && c.onAuthExpired != nil {
			c.onAuthExpired()
		}

		code := pkgerrors.FromStatus(resp.StatusCode)
		if message == "" && code == pkgerrors.CodeRemote {
			message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return nil, pkgerrors.New(code, message).WithStatus(resp.StatusCode)
	}

	return resp, nil
}

// do executes a request and decodes the JSON response into out when out
// is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeRemote, err, "decode response")
	}
	return nil
}

// readErrorMessage pulls the message field out of an error body, if any.
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, errorBodyReadLimit))
	if err != nil {
		return ""
	}
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ""
	}
	return strings.TrimSpace(parsed.Message)
}

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds every request that the caller's context does
// not bound first
const DefaultTimeout = 10 * time.Second

// Result is the outcome of an HTTP exchange that reached the server.
// Callers branch on Code (or OK for any 2xx), never on body truthiness.
type Result struct {
	OK   bool
	Code int
	Body []byte
}

// Client issues requests against the marketplace REST backend
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base address
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured base address
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request. An empty token sends no Authorization header
func (c *Client) Get(ctx context.Context, path, token string) (Result, error) {
	return c.do(ctx, http.MethodGet, path, nil, token)
}

// Post issues a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, payload any, token string) (Result, error) {
	return c.do(ctx, http.MethodPost, path, payload, token)
}

// Put issues a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, path string, payload any, token string) (Result, error) {
	return c.do(ctx, http.MethodPut, path, payload, token)
}

// Patch issues a PATCH request with a JSON body
func (c *Client) Patch(ctx context.Context, path string, payload any, token string) (Result, error) {
	return c.do(ctx, http.MethodPatch, path, payload, token)
}

// Delete issues a DELETE request
func (c *Client) Delete(ctx context.Context, path, token string) (Result, error) {
	return c.do(ctx, http.MethodDelete, path, nil, token)
}

// do builds, sends and drains one request. A returned error means the
// request never produced an HTTP response (transport failure); any
// response, success or not, comes back as a Result.
func (c *Client) do(ctx context.Context, method, path string, payload any, token string) (Result, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return Result{}, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		// The token is forwarded as-is; the backend decides whether it
		// is valid (the client never pre-validates token shape)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%s %s [%s]: %w", method, path, requestID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response [%s]: %w", requestID, err)
	}

	return Result{
		OK:   resp.StatusCode >= 200 && resp.StatusCode < 300,
		Code: resp.StatusCode,
		Body: data,
	}, nil
}

// Package client is a Go client for the paikeys HTTP routing API.
//
// Usage:
//
//	c := client.New("http://localhost:8080")
//	resp, err := c.Route(ctx, &client.RouteRequest{
//		Prompt:   "Write a Python function to parse JSON",
//		Modality: "code",
//		Priority: "speed",
//	})
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultTimeout bounds every request made by a Client.
	DefaultTimeout = 30 * time.Second

	routeModelPath = "/api/route-model"
	readyPath      = "/health/ready"
	requestIDKey   = "X-Request-ID"
)

// Client calls a paikeys server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  "paikeys-go-client",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets a custom timeout for HTTP requests
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets a custom user agent for requests
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// Route asks the server for a routing decision.
func (c *Client) Route(ctx context.Context, req *RouteRequest) (*RouteResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, routeModelPath, req, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out RouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode route response: %w", err)
	}
	out.RequestID = resp.Header.Get(requestIDKey)
	return &out, nil
}

// Models lists the server's catalog. When etag matches the server's current
// catalog digest the returned list is nil and NotModified is true.
func (c *Client) Models(ctx context.Context, etag string) (*ModelList, error) {
	header := http.Header{}
	if etag != "" {
		header.Set("If-None-Match", etag)
	}

	resp, err := c.do(ctx, http.MethodGet, routeModelPath, nil, header)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	list := &ModelList{ETag: resp.Header.Get("ETag")}
	if resp.StatusCode == http.StatusNotModified {
		list.NotModified = true
		return list, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(list); err != nil {
		return nil, fmt.Errorf("decode model list: %w", err)
	}
	return list, nil
}

// Ready reports whether the server's readiness probe passes.
func (c *Client) Ready(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, readyPath, nil, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, header http.Header) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDKey, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, parseError(resp)
	}
	return resp, nil
}

// parseError builds an APIError from a failed response. Bodies that are not
// the server's JSON error shape are kept verbatim as the message.
func parseError(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("read error response: %w", err)
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get(requestIDKey),
	}
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Code = body.Code
	} else {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	return apiErr
}

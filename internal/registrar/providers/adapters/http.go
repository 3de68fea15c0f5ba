package adapters

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

	"watchdog/internal/registrar/providers"
)

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request describes one outbound call to a registrar JSON API.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Bearer string
	Body   any
}

// Response is a fully read registrar response.
type Response struct {
	StatusCode int
	Body       []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// JSONClient issues JSON requests against a registrar base URL. Network faults
// are reported as providers.ErrorTransport; status codes are left to the caller.
type JSONClient struct {
	provider string
	baseURL  string
	client   HTTPDoer
}

// JSONClientConfig configures a JSONClient
type JSONClientConfig struct {
	Provider   string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient HTTPDoer
}

// NewJSONClient creates a JSON client; a default http.Client is used when
// none is supplied.
func NewJSONClient(cfg JSONClientConfig) *JSONClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &JSONClient{
		provider: cfg.Provider,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		client:   client,
	}
}

// Do executes the request and reads the whole response.
func (c *JSONClient) Do(ctx context.Context, r Request) (*Response, error) {
	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, providers.NewError(providers.ErrorTransport, c.provider, "failed to marshal request", err)
		}
		body = bytes.NewReader(payload)
	}

	target := c.baseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, providers.NewError(providers.ErrorTransport, c.provider, "failed to create request", err)
	}
	for k, values := range r.Header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.Bearer != "" {
		req.Header.Set("Authorization", "Bearer "+r.Bearer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, providers.NewError(providers.ErrorTransport, c.provider, "request timeout", err)
		}
		return nil, providers.NewError(providers.ErrorTransport, c.provider, "failed to execute request", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, providers.NewError(providers.ErrorTransport, c.provider, "failed to read response", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// Expect returns a transport error unless the response has the given status.
func (c *JSONClient) Expect(resp *Response, status int) error {
	if resp.StatusCode != status {
		return providers.NewError(providers.ErrorTransport, c.provider,
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}
	return nil
}

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// Client is a thin JSON client over the commerce API. It owns its transport
// configuration (strict timeouts) and de-duplicates identical concurrent GET
// fetches, so parallel verification scenarios reading the same entity share
// one round trip.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sf         singleflight.Group
}

// StatusError is returned when the API answers with an unexpected status.
// A failed fetch is a fatal setup error for the caller, never a mismatch.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// New creates a new API client from the configuration.
func New(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

// DoJSON performs a request with an optional JSON body and decodes the JSON
// response into out (when out is non-nil and a body is present). It returns
// the response status code; interpreting the code against the endpoint's
// contract is the caller's job.
func (c *Client) DoJSON(ctx context.Context, method, path string, headers map[string]string, body, out any) (int, error) {
	status, raw, err := c.roundTrip(ctx, method, path, headers, body)
	if err != nil {
		return 0, err
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return status, fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return status, nil
}

// GetJSON performs a GET and decodes the response. Identical concurrent GETs
// of the same path collapse into a single round trip.
func (c *Client) GetJSON(ctx context.Context, path string, out any) (int, error) {
	type fetched struct {
		status int
		raw    []byte
	}

	v, err, _ := c.sf.Do(path, func() (any, error) {
		status, raw, err := c.roundTrip(ctx, http.MethodGet, path, nil, nil)
		if err != nil {
			return nil, err
		}
		return fetched{status: status, raw: raw}, nil
	})
	if err != nil {
		return 0, err
	}

	f := v.(fetched)
	if out != nil && len(f.raw) > 0 {
		if err := json.Unmarshal(f.raw, out); err != nil {
			return f.status, fmt.Errorf("GET %s: decode response: %w", path, err)
		}
	}
	return f.status, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, headers map[string]string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: build request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	return resp.StatusCode, raw, nil
}

// Expect wraps a status code check into the standard setup-error shape.
func Expect(method, path string, got, want int) error {
	if got != want {
		return &StatusError{Method: method, Path: path, Status: got}
	}
	return nil
}

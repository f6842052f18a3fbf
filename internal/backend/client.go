package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"itapay-admin/internal/config"
)

// Client talks to the payments backend. Every call goes to the network; there is
// no caching, retry or client-side timeout beyond the caller's context. Repeated
// backend failures trip a circuit breaker when one is configured.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	breaker *CircuitBreaker

	Customers CustomerAPI
	Accounts  AccountAPI
	Transfers TransferAPI
}

// NewClient creates a backend client for cfg
func NewClient(cfg *config.BackendConfig, metrics MetricsRecorder, logger *slog.Logger) *Client {
	return NewClientWithTransport(cfg, http.DefaultTransport, metrics, logger)
}

// NewClientWithTransport creates a backend client on top of the given round tripper
func NewClientWithTransport(
	cfg *config.BackendConfig,
	base http.RoundTripper,
	metrics MetricsRecorder,
	logger *slog.Logger,
) *Client {
	if cfg.APIKey != "" {
		base = &AuthTransport{apiKey: cfg.APIKey, base: base}
	}

	var breaker *CircuitBreaker
	if cfg.BreakerMaxFailures > 0 {
		breaker = NewCircuitBreaker(BreakerConfig{
			MaxFailures:  cfg.BreakerMaxFailures,
			ResetTimeout: cfg.BreakerResetTimeout,
		})
		base = &BreakerTransport{base: base, breaker: breaker, logger: logger}
	}

	transport := &LoggingTransport{
		base:    base,
		logger:  logger,
		metrics: metrics,
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Transport: transport},
		logger:  logger,
		breaker: breaker,
	}
	c.Customers = &customerClient{c: c}
	c.Accounts = &accountClient{c: c}
	c.Transfers = &transferClient{c: c}

	return c
}

// BreakerState reports the circuit breaker state; StateClosed when no breaker is configured
func (c *Client) BreakerState() BreakerState {
	if c.breaker == nil {
		return StateClosed
	}
	return c.breaker.State()
}

func (c *Client) buildRequest(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
) (*http.Request, error) {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// do sends req and decodes a 2xx body into out. Non-2xx responses become *APIError.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(req.Method, req.URL.Path, resp.StatusCode, body)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.buildRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

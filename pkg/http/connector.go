package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// DefaultMaxResponseBytes caps response bodies when ConnectorConfig leaves it unset
const DefaultMaxResponseBytes int64 = 4 << 20

// Connector sends JSON requests to a single upstream base URL
type Connector struct {
	baseURL          string
	maxResponseBytes int64
	httpClient       *http.Client
	logger           *zap.Logger
}

type ConnectorConfig struct {
	BaseURL          string
	MaxResponseBytes int64
	Logger           *zap.Logger
}

func NewConnector(config *ConnectorConfig, options ...HttpOpts) *Connector {
	limit := config.MaxResponseBytes
	if limit <= 0 {
		limit = DefaultMaxResponseBytes
	}

	return &Connector{
		baseURL:          config.BaseURL,
		maxResponseBytes: limit,
		httpClient:       newClient(options...),
		logger:           config.Logger,
	}
}

type RequestOpt func(*requestConfig)

type requestConfig struct {
	headers map[string]string
}

func WithHeader(key, value string) RequestOpt {
	return func(c *requestConfig) {
		if c.headers == nil {
			c.headers = make(map[string]string)
		}
		c.headers[key] = value
	}
}

// DoRequest sends reqBody as JSON to baseURL+endpoint and decodes a 2xx
// response into respBody. Non-2xx responses return *HTTPError, transport
// failures *NetworkError, and bodies over the configured limit
// ErrResponseTooLarge.
func (c *Connector) DoRequest(ctx context.Context, method, endpoint string, reqBody, respBody any, opts ...RequestOpt) error {
	cfg := &requestConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	req, err := c.newRequest(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	for key, value := range cfg.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := c.readBody(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newHTTPError(resp.StatusCode, body)
	}

	if respBody == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, respBody); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Connector) newRequest(ctx context.Context, method, endpoint string, reqBody any) (*http.Request, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		payload, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
		ctx = context.WithValue(ctx, payloadContextKey{}, payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// readBody reads at most maxResponseBytes; one extra byte detects overflow
func (c *Connector) readBody(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, c.maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(body)) > c.maxResponseBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, c.maxResponseBytes)
	}
	return body, nil
}

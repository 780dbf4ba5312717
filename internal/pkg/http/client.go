package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/piresc/intercity/internal/pkg/logger"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 10 * time.Second

// Config holds the client settings for one upstream service
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	BearerToken string
}

// Client is a JSON HTTP client for one upstream service
type Client struct {
	baseURL     string
	bearerToken string
	httpClient  *nethttp.Client
}

// HTTPError is returned for upstream responses with status >= 400
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Body)
}

// Temporary reports whether the upstream failure may succeed on retry
func (e *HTTPError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == nethttp.StatusTooManyRequests
}

// StatusCode returns the upstream status of err, 0 if err is not an HTTPError
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		bearerToken: config.BearerToken,
		httpClient:  &nethttp.Client{Timeout: timeout},
	}
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.do(ctx, nethttp.MethodGet, endpoint, nil, result)
}

// PostJSON performs a POST request with a JSON body and decodes the JSON response into result
func (c *Client) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	return c.do(ctx, nethttp.MethodPost, endpoint, body, result)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}, result interface{}) error {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WarnCtx(ctx, "HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	logger.DebugCtx(ctx, "HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status", resp.StatusCode),
		logger.Duration("duration", time.Since(start)))

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

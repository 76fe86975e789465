package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout is the vendor-documented per-request timeout applied when
// the caller does not override it.
const DefaultTimeout = 20 * time.Second

const userAgent = "skuvault-go/1.0"

type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

type RequestOptions struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    interface{}
	Context context.Context
	Timeout time.Duration
}

type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// RequestError is returned for connection failures and non-2xx responses.
// It carries the original request parameters and, when a response was
// received, its status and body, so callers can inspect vendor-side
// rejections (validation errors, rate limits) without this layer parsing
// them.
type RequestError struct {
	Method       string
	URL          string
	RequestBody  []byte
	StatusCode   int // zero when no response was received
	ResponseBody []byte
	Err          error // underlying transport error, if any
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, string(e.ResponseBody))
}

func (e *RequestError) Unwrap() error { return e.Err }

func NewClient() *Client {
	logger, _ := zap.NewProduction()
	return NewClientWithLogger(logger)
}

// NewClientWithLogger creates a new HTTP client with a custom logger
func NewClientWithLogger(logger *zap.Logger) *Client {
	return &Client{
		// The timeout is enforced per request in Do; a non-zero
		// Client.Timeout would cap caller overrides above the default.
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Do issues exactly one HTTP request. There is no retry or backoff at this
// layer; every failure is surfaced synchronously to the caller as a
// *RequestError.
func (c *Client) Do(opts RequestOptions) (*Response, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, bodyBytes, err := c.buildRequest(ctx, opts)
	if err != nil {
		c.logger.Error("Failed to build request", zap.Error(err), zap.String("method", opts.Method), zap.String("url", opts.URL))
		return nil, err
	}

	requestID := uuid.NewString()
	c.logger.Debug("Making HTTP request",
		zap.String("request_id", requestID),
		zap.String("method", opts.Method),
		zap.String("url", opts.URL))

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("HTTP request failed",
			zap.String("request_id", requestID),
			zap.Error(err),
			zap.String("method", opts.Method),
			zap.String("url", opts.URL))
		return nil, &RequestError{
			Method:      opts.Method,
			URL:         opts.URL,
			RequestBody: bodyBytes,
			Err:         err,
		}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.logger.Error("Failed to read response body", zap.String("request_id", requestID), zap.Error(err))
		return nil, &RequestError{
			Method:      opts.Method,
			URL:         opts.URL,
			RequestBody: bodyBytes,
			StatusCode:  httpResp.StatusCode,
			Err:         fmt.Errorf("failed to read response body: %w", err),
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		c.logger.Error("HTTP request rejected",
			zap.String("request_id", requestID),
			zap.Int("status_code", httpResp.StatusCode),
			zap.String("method", opts.Method),
			zap.String("url", opts.URL),
			zap.String("response", string(body)))
		// The response is returned alongside the error so callers can
		// inspect the vendor's rejection body.
		return resp, &RequestError{
			Method:       opts.Method,
			URL:          opts.URL,
			RequestBody:  bodyBytes,
			StatusCode:   httpResp.StatusCode,
			ResponseBody: body,
		}
	}

	c.logger.Debug("HTTP request successful",
		zap.String("request_id", requestID),
		zap.Int("status_code", httpResp.StatusCode),
		zap.String("method", opts.Method),
		zap.String("url", opts.URL))

	return resp, nil
}

func (c *Client) buildRequest(ctx context.Context, opts RequestOptions) (*http.Request, []byte, error) {
	var bodyBytes []byte
	var bodyReader io.Reader
	if opts.Body != nil {
		if b, ok := opts.Body.([]byte); ok {
			bodyBytes = b
		} else {
			b, err := json.Marshal(opts.Body)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
			}
			bodyBytes = b
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, opts.URL, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set default headers
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Caller headers win over defaults.
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	return req, bodyBytes, nil
}

func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return c.Do(RequestOptions{
		Method:  http.MethodGet,
		URL:     url,
		Headers: headers,
		Context: ctx,
	})
}

func (c *Client) Post(ctx context.Context, url string, headers map[string]string, body interface{}) (*Response, error) {
	return c.Do(RequestOptions{
		Method:  http.MethodPost,
		URL:     url,
		Headers: headers,
		Body:    body,
		Context: ctx,
	})
}

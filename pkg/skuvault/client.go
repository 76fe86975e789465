// Package skuvault provides a client for the SkuVault inventory-management
// REST API.
//
// SkuVault is a warehouse and inventory management platform. Its API is a
// flat collection of POST endpoints grouped by category (products,
// inventory, sales, purchase orders, warehouses); every request body is a
// JSON object that carries the tenant/user token pair alongside the
// operation's own fields.
//
// This package maps each vendor endpoint to one method. Methods are
// stateless: each call builds an independent request body, issues a single
// HTTP POST, and returns the raw transport response for the caller to
// interpret. Response bodies are never parsed or validated here; structured
// result typing belongs to a higher layer.
package skuvault

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/natserract/skuvault/pkg/config"
	httpclient "github.com/natserract/skuvault/pkg/http"
	"go.uber.org/zap"
)

// Credentials is the two-part token pair SkuVault requires on every request.
type Credentials struct {
	TenantToken string
	UserToken   string
}

// Client is the SkuVault API client. The credential pair is the only mutable
// state; it is guarded so request construction always reads a consistent
// snapshot even while SetCredentials runs.
type Client struct {
	baseURI    string
	timeout    time.Duration
	httpClient *httpclient.Client
	logger     *zap.Logger

	mu    sync.RWMutex
	creds Credentials
}

// NewClient creates a new SkuVault client with default production logger
func NewClient(cfg *config.Config) *Client {
	logger, _ := zap.NewProduction()
	return NewClientWithLogger(cfg, logger)
}

// NewClientWithLogger creates a new SkuVault client with a custom logger
func NewClientWithLogger(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		baseURI:    cfg.ResolveBaseURI(),
		timeout:    cfg.RequestTimeout,
		httpClient: httpclient.NewClientWithLogger(logger),
		logger:     logger,
		creds: Credentials{
			TenantToken: cfg.TenantToken,
			UserToken:   cfg.UserToken,
		},
	}
}

// SetCredentials replaces the stored token pair. Tokens obtained through
// GetTokens are not applied automatically; callers opt in by calling this.
func (c *Client) SetCredentials(creds Credentials) {
	c.mu.Lock()
	c.creds = creds
	c.mu.Unlock()
	c.logger.Info("Credentials updated")
}

// credentials returns an immutable snapshot of the stored token pair.
func (c *Client) credentials() Credentials {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.creds
}

// post issues one authenticated POST to the given endpoint path. The auth
// fields are merged ahead of the operation fields; the raw response is
// returned untouched. A non-2xx status yields both the response and a
// *httpclient.RequestError.
//
// The request runs under Config.RequestTimeout (the transport's 20-second
// default when unset); a shorter deadline on ctx still wins.
func (c *Client) post(ctx context.Context, path string, fields *Payload, headers map[string]string) (*httpclient.Response, error) {
	payload := buildRequest(c.credentials(), fields)
	return c.send(ctx, path, payload, headers)
}

// postUnauthenticated issues one POST without merging the token pair. Only
// the credential bootstrap endpoint uses this.
func (c *Client) postUnauthenticated(ctx context.Context, path string, fields *Payload) (*httpclient.Response, error) {
	return c.send(ctx, path, fields, nil)
}

func (c *Client) send(ctx context.Context, path string, payload *Payload, headers map[string]string) (*httpclient.Response, error) {
	endpoint, err := httpclient.BuildURL(c.baseURI, path, nil)
	if err != nil {
		c.logger.Error("Failed to build URL", zap.Error(err), zap.String("path", path))
		return nil, fmt.Errorf("failed to build URL: %w", err)
	}

	c.logger.Debug("Calling SkuVault API", zap.String("endpoint", endpoint))
	return c.httpClient.Do(httpclient.RequestOptions{
		Method:  http.MethodPost,
		URL:     endpoint,
		Headers: headers,
		Body:    payload,
		Context: ctx,
		Timeout: c.timeout,
	})
}

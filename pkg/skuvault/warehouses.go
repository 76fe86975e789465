package skuvault

import (
	"context"

	httpclient "github.com/natserract/skuvault/pkg/http"
)

// GetWarehouses retrieves a page of warehouses.
func (c *Client) GetWarehouses(ctx context.Context, pageNumber, pageSize int) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("PageNumber", pageNumber).
		Set("PageSize", pageSize)
	return c.post(ctx, "inventory/getWarehouses", fields, nil)
}

// GetLocations retrieves a page of warehouse locations.
func (c *Client) GetLocations(ctx context.Context, pageNumber, pageSize int) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("PageNumber", pageNumber).
		Set("PageSize", pageSize)
	return c.post(ctx, "inventory/getLocations", fields, nil)
}

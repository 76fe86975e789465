package skuvault

import (
	"context"

	httpclient "github.com/natserract/skuvault/pkg/http"
)

// InventoryItem is one line of a bulk inventory call. Exactly one of Sku,
// Code or PartNumber identifies the product.
type InventoryItem struct {
	Sku          string `json:"Sku,omitempty"`
	Code         string `json:"Code,omitempty"`
	PartNumber   string `json:"PartNumber,omitempty"`
	WarehouseID  int    `json:"WarehouseId"`
	LocationCode string `json:"LocationCode"`
	Quantity     int    `json:"Quantity"`
	Reason       string `json:"Reason,omitempty"`
	Note         string `json:"Note,omitempty"`
}

// AddItem adds quantity of one product to a warehouse location. The
// identifier kind decides which vendor field carries the value.
func (c *Client) AddItem(ctx context.Context, ident ItemIdentifier, value string, quantity, warehouseID int, locationCode string) (*httpclient.Response, error) {
	fields := NewPayload().
		Set(ident.FieldName(), value).
		Set("WarehouseId", warehouseID).
		Set("LocationCode", locationCode).
		Set("Quantity", quantity)
	return c.post(ctx, "inventory/addItem", fields, nil)
}

// AddItemBulk adds quantities for many products in one call. The vendor
// caps a single call at 100 items.
func (c *Client) AddItemBulk(ctx context.Context, items []InventoryItem) (*httpclient.Response, error) {
	fields := NewPayload().Set("Items", items)
	return c.post(ctx, "inventory/addItemBulk", fields, nil)
}

// RemoveItem removes quantity of one product from a warehouse location.
func (c *Client) RemoveItem(ctx context.Context, ident ItemIdentifier, value string, quantity, warehouseID int, locationCode, reason string) (*httpclient.Response, error) {
	fields := NewPayload().
		Set(ident.FieldName(), value).
		Set("WarehouseId", warehouseID).
		Set("LocationCode", locationCode).
		Set("Quantity", quantity)
	if reason != "" {
		fields.Set("Reason", reason)
	}
	return c.post(ctx, "inventory/removeItem", fields, nil)
}

// RemoveItemBulk removes quantities for many products in one call.
func (c *Client) RemoveItemBulk(ctx context.Context, items []InventoryItem) (*httpclient.Response, error) {
	fields := NewPayload().Set("Items", items)
	return c.post(ctx, "inventory/removeItemBulk", fields, nil)
}

// PickItem marks quantity of one product as picked from a location.
func (c *Client) PickItem(ctx context.Context, ident ItemIdentifier, value string, quantity, warehouseID int, locationCode string) (*httpclient.Response, error) {
	fields := NewPayload().
		Set(ident.FieldName(), value).
		Set("WarehouseId", warehouseID).
		Set("LocationCode", locationCode).
		Set("Quantity", quantity)
	return c.post(ctx, "inventory/pickItem", fields, nil)
}

// PickItemBulk marks quantities for many products as picked in one call.
func (c *Client) PickItemBulk(ctx context.Context, items []InventoryItem) (*httpclient.Response, error) {
	fields := NewPayload().Set("Items", items)
	return c.post(ctx, "inventory/pickItemBulk", fields, nil)
}

// SetItemQuantity sets the absolute quantity of one product at a location.
func (c *Client) SetItemQuantity(ctx context.Context, ident ItemIdentifier, value string, quantity, warehouseID int, locationCode string) (*httpclient.Response, error) {
	fields := NewPayload().
		Set(ident.FieldName(), value).
		Set("WarehouseId", warehouseID).
		Set("LocationCode", locationCode).
		Set("Quantity", quantity)
	return c.post(ctx, "inventory/setItemQuantity", fields, nil)
}

// SetItemQuantities sets absolute quantities for many products in one call.
func (c *Client) SetItemQuantities(ctx context.Context, items []InventoryItem) (*httpclient.Response, error) {
	fields := NewPayload().Set("Items", items)
	return c.post(ctx, "inventory/setItemQuantities", fields, nil)
}

// GetItemQuantity retrieves the quantity breakdown of one product.
func (c *Client) GetItemQuantity(ctx context.Context, ident ItemIdentifier, value string) (*httpclient.Response, error) {
	fields := NewPayload().Set(ident.FieldName(), value)
	return c.post(ctx, "inventory/getItemQuantity", fields, nil)
}

// GetItemQuantities retrieves a page of item quantities. The date bounds
// accept anything NormalizeDate does and may be nil.
func (c *Client) GetItemQuantities(ctx context.Context, pageNumber, pageSize int, modifiedAfter, modifiedBefore interface{}) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("PageNumber", pageNumber).
		Set("PageSize", pageSize)
	if modifiedAfter != nil {
		fields.Set("ModifiedAfterDateTimeUtc", FormatDate(NormalizeDate(modifiedAfter)))
	}
	if modifiedBefore != nil {
		fields.Set("ModifiedBeforeDateTimeUtc", FormatDate(NormalizeDate(modifiedBefore)))
	}
	return c.post(ctx, "inventory/getItemQuantities", fields, nil)
}

// GetAvailableQuantities retrieves a page of available (sellable)
// quantities. This endpoint requires the versioned API; the version header
// is added unless the caller supplied its own header set.
func (c *Client) GetAvailableQuantities(ctx context.Context, pageNumber, pageSize int, headers map[string]string) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("PageNumber", pageNumber).
		Set("PageSize", pageSize)
	if headers == nil {
		headers = map[string]string{"X-API-Version": "2"}
	}
	return c.post(ctx, "inventory/getAvailableQuantities", fields, headers)
}

// GetInventoryByLocation retrieves a page of per-location inventory.
func (c *Client) GetInventoryByLocation(ctx context.Context, pageNumber, pageSize int, productSKUs []string) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("PageNumber", pageNumber).
		Set("PageSize", pageSize)
	if len(productSKUs) > 0 {
		fields.Set("ProductSKUs", productSKUs)
	}
	return c.post(ctx, "inventory/getInventoryByLocation", fields, nil)
}

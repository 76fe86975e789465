package skuvault

import (
	"context"

	httpclient "github.com/natserract/skuvault/pkg/http"
)

// PurchaseOrderItem is one line of a purchase order.
type PurchaseOrderItem struct {
	SKU      string  `json:"SKU"`
	Quantity int     `json:"Quantity"`
	Cost     float64 `json:"Cost,omitempty"`
	Variant  string  `json:"Variant,omitempty"`
}

// PurchaseOrder describes a purchase order for the create/update endpoints.
type PurchaseOrder struct {
	PoNumber       string              `json:"PoNumber"`
	SupplierName   string              `json:"SupplierName,omitempty"`
	Status         string              `json:"Status,omitempty"`
	OrderDate      *APITime            `json:"OrderDate,omitempty"`
	ArrivalDueDate *APITime            `json:"ArrivalDueDate,omitempty"`
	LineItems      []PurchaseOrderItem `json:"LineItems,omitempty"`
}

// ReceiveItem is one received line against a purchase order.
type ReceiveItem struct {
	SKU      string `json:"SKU"`
	Quantity int    `json:"Quantity"`
}

// GetPOsOptions narrows a GetPOs call. Zero values are omitted from the
// request body.
type GetPOsOptions struct {
	PageNumber                int
	PageSize                  int
	Status                    string
	ModifiedAfterDateTimeUtc  interface{}
	ModifiedBeforeDateTimeUtc interface{}
}

// CreatePO creates a purchase order.
func (c *Client) CreatePO(ctx context.Context, po PurchaseOrder) (*httpclient.Response, error) {
	return c.post(ctx, "purchaseorders/createPO", poFields(po), nil)
}

// UpdatePO updates a purchase order, matched by PoNumber.
func (c *Client) UpdatePO(ctx context.Context, po PurchaseOrder) (*httpclient.Response, error) {
	return c.post(ctx, "purchaseorders/updatePO", poFields(po), nil)
}

// GetPOs retrieves a page of purchase orders.
func (c *Client) GetPOs(ctx context.Context, opts GetPOsOptions) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("PageNumber", opts.PageNumber).
		Set("PageSize", opts.PageSize)
	if opts.Status != "" {
		fields.Set("Status", opts.Status)
	}
	if opts.ModifiedAfterDateTimeUtc != nil {
		fields.Set("ModifiedAfterDateTimeUtc", FormatDate(NormalizeDate(opts.ModifiedAfterDateTimeUtc)))
	}
	if opts.ModifiedBeforeDateTimeUtc != nil {
		fields.Set("ModifiedBeforeDateTimeUtc", FormatDate(NormalizeDate(opts.ModifiedBeforeDateTimeUtc)))
	}
	return c.post(ctx, "purchaseorders/getPOs", fields, nil)
}

// ReceivePOItems records received lines against a purchase order.
func (c *Client) ReceivePOItems(ctx context.Context, poNumber string, items []ReceiveItem) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("PoNumber", poNumber).
		Set("Items", items)
	return c.post(ctx, "purchaseorders/receivePOItems", fields, nil)
}

func poFields(po PurchaseOrder) *Payload {
	fields := NewPayload().Set("PoNumber", po.PoNumber)
	if po.SupplierName != "" {
		fields.Set("SupplierName", po.SupplierName)
	}
	if po.Status != "" {
		fields.Set("Status", po.Status)
	}
	if po.OrderDate != nil {
		fields.Set("OrderDate", po.OrderDate)
	}
	if po.ArrivalDueDate != nil {
		fields.Set("ArrivalDueDate", po.ArrivalDueDate)
	}
	if len(po.LineItems) > 0 {
		fields.Set("LineItems", po.LineItems)
	}
	return fields
}

package skuvault

import (
	"context"

	httpclient "github.com/natserract/skuvault/pkg/http"
)

// Shipment records carrier and tracking details for one sale.
type Shipment struct {
	SaleID         string  `json:"SaleId"`
	TrackingNumber string  `json:"TrackingNumber"`
	Carrier        string  `json:"Carrier,omitempty"`
	Class          string  `json:"Class,omitempty"`
	ShippingCost   float64 `json:"ShippingCost,omitempty"`
}

// SaleItem is one line of an online sale.
type SaleItem struct {
	Sku       string  `json:"Sku"`
	Quantity  int     `json:"Quantity"`
	UnitPrice float64 `json:"UnitPrice,omitempty"`
}

// OnlineSale is a marketplace sale pushed into SkuVault.
type OnlineSale struct {
	SaleID        string     `json:"SaleId"`
	Marketplace   string     `json:"Marketplace,omitempty"`
	MarketplaceID string     `json:"MarketplaceId,omitempty"`
	SaleDate      *APITime   `json:"SaleDate,omitempty"`
	Status        string     `json:"Status,omitempty"`
	MerchantItems []SaleItem `json:"MerchantItems,omitempty"`
	SaleItems     []SaleItem `json:"SaleItems,omitempty"`
}

// AddShipments records shipments for sales in bulk.
func (c *Client) AddShipments(ctx context.Context, shipments []Shipment) (*httpclient.Response, error) {
	fields := NewPayload().Set("Shipments", shipments)
	return c.post(ctx, "sales/addShipments", fields, nil)
}

// UpdateShipments updates previously recorded shipments in bulk.
func (c *Client) UpdateShipments(ctx context.Context, shipments []Shipment) (*httpclient.Response, error) {
	fields := NewPayload().Set("Shipments", shipments)
	return c.post(ctx, "sales/updateShipments", fields, nil)
}

// SyncOnlineSale pushes one marketplace sale.
func (c *Client) SyncOnlineSale(ctx context.Context, sale OnlineSale) (*httpclient.Response, error) {
	fields := NewPayload().Set("SaleId", sale.SaleID)
	if sale.Marketplace != "" {
		fields.Set("Marketplace", sale.Marketplace)
	}
	if sale.MarketplaceID != "" {
		fields.Set("MarketplaceId", sale.MarketplaceID)
	}
	if sale.SaleDate != nil {
		fields.Set("SaleDate", sale.SaleDate)
	}
	if sale.Status != "" {
		fields.Set("Status", sale.Status)
	}
	if len(sale.MerchantItems) > 0 {
		fields.Set("MerchantItems", sale.MerchantItems)
	}
	if len(sale.SaleItems) > 0 {
		fields.Set("SaleItems", sale.SaleItems)
	}
	return c.post(ctx, "sales/syncOnlineSale", fields, nil)
}

// SyncOnlineSales pushes marketplace sales in bulk. The vendor caps a
// single call at 100 sales.
func (c *Client) SyncOnlineSales(ctx context.Context, sales []OnlineSale) (*httpclient.Response, error) {
	fields := NewPayload().Set("Sales", sales)
	return c.post(ctx, "sales/syncOnlineSales", fields, nil)
}

// GetSales retrieves a page of sales.
func (c *Client) GetSales(ctx context.Context, pageNumber, pageSize int) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("PageNumber", pageNumber).
		Set("PageSize", pageSize)
	return c.post(ctx, "sales/getSales", fields, nil)
}

// GetSalesByDate retrieves a page of sales bounded by modification time.
// The bounds accept anything NormalizeDate does.
func (c *Client) GetSalesByDate(ctx context.Context, from, to interface{}, pageNumber, pageSize int) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("FromDate", FormatDate(NormalizeDate(from))).
		Set("ToDate", FormatDate(NormalizeDate(to))).
		Set("PageNumber", pageNumber).
		Set("PageSize", pageSize)
	return c.post(ctx, "sales/getSalesByDate", fields, nil)
}

// UpdateOnlineSaleStatus changes the status of one marketplace sale.
func (c *Client) UpdateOnlineSaleStatus(ctx context.Context, saleID, status string) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("SaleId", saleID).
		Set("Status", status)
	return c.post(ctx, "sales/updateOnlineSaleStatus", fields, nil)
}

package skuvault

import (
	"context"

	httpclient "github.com/natserract/skuvault/pkg/http"
)

// SkuVaultClient defines the interface for SkuVault API operations
type SkuVaultClient interface {
	// GetTokens exchanges an email/password for a tenant/user token pair
	GetTokens(ctx context.Context, email, password string) (*httpclient.Response, error)

	// SetCredentials replaces the stored token pair
	SetCredentials(creds Credentials)

	// Products
	CreateProduct(ctx context.Context, product Product) (*httpclient.Response, error)
	CreateProducts(ctx context.Context, products []Product) (*httpclient.Response, error)
	UpdateProduct(ctx context.Context, product Product) (*httpclient.Response, error)
	UpdateProducts(ctx context.Context, products []Product) (*httpclient.Response, error)
	GetProducts(ctx context.Context, opts GetProductsOptions) (*httpclient.Response, error)
	CreateBrands(ctx context.Context, brands []Brand) (*httpclient.Response, error)
	GetBrands(ctx context.Context, pageNumber, pageSize int) (*httpclient.Response, error)
	CreateSuppliers(ctx context.Context, suppliers []Supplier) (*httpclient.Response, error)
	GetSuppliers(ctx context.Context) (*httpclient.Response, error)
	GetClassifications(ctx context.Context) (*httpclient.Response, error)
	GetKitQuantities(ctx context.Context, pageNumber, pageSize int, kitSKUs []string) (*httpclient.Response, error)

	// Inventory
	AddItem(ctx context.Context, ident ItemIdentifier, value string, quantity, warehouseID int, locationCode string) (*httpclient.Response, error)
	AddItemBulk(ctx context.Context, items []InventoryItem) (*httpclient.Response, error)
	RemoveItem(ctx context.Context, ident ItemIdentifier, value string, quantity, warehouseID int, locationCode, reason string) (*httpclient.Response, error)
	RemoveItemBulk(ctx context.Context, items []InventoryItem) (*httpclient.Response, error)
	PickItem(ctx context.Context, ident ItemIdentifier, value string, quantity, warehouseID int, locationCode string) (*httpclient.Response, error)
	PickItemBulk(ctx context.Context, items []InventoryItem) (*httpclient.Response, error)
	SetItemQuantity(ctx context.Context, ident ItemIdentifier, value string, quantity, warehouseID int, locationCode string) (*httpclient.Response, error)
	SetItemQuantities(ctx context.Context, items []InventoryItem) (*httpclient.Response, error)
	GetItemQuantity(ctx context.Context, ident ItemIdentifier, value string) (*httpclient.Response, error)
	GetItemQuantities(ctx context.Context, pageNumber, pageSize int, modifiedAfter, modifiedBefore interface{}) (*httpclient.Response, error)
	GetAvailableQuantities(ctx context.Context, pageNumber, pageSize int, headers map[string]string) (*httpclient.Response, error)
	GetInventoryByLocation(ctx context.Context, pageNumber, pageSize int, productSKUs []string) (*httpclient.Response, error)

	// Sales
	AddShipments(ctx context.Context, shipments []Shipment) (*httpclient.Response, error)
	UpdateShipments(ctx context.Context, shipments []Shipment) (*httpclient.Response, error)
	SyncOnlineSale(ctx context.Context, sale OnlineSale) (*httpclient.Response, error)
	SyncOnlineSales(ctx context.Context, sales []OnlineSale) (*httpclient.Response, error)
	GetSales(ctx context.Context, pageNumber, pageSize int) (*httpclient.Response, error)
	GetSalesByDate(ctx context.Context, from, to interface{}, pageNumber, pageSize int) (*httpclient.Response, error)
	UpdateOnlineSaleStatus(ctx context.Context, saleID, status string) (*httpclient.Response, error)

	// Purchase orders
	CreatePO(ctx context.Context, po PurchaseOrder) (*httpclient.Response, error)
	UpdatePO(ctx context.Context, po PurchaseOrder) (*httpclient.Response, error)
	GetPOs(ctx context.Context, opts GetPOsOptions) (*httpclient.Response, error)
	ReceivePOItems(ctx context.Context, poNumber string, items []ReceiveItem) (*httpclient.Response, error)

	// Warehouses
	GetWarehouses(ctx context.Context, pageNumber, pageSize int) (*httpclient.Response, error)
	GetLocations(ctx context.Context, pageNumber, pageSize int) (*httpclient.Response, error)
}

var _ SkuVaultClient = (*Client)(nil)

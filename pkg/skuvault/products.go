package skuvault

import (
	"context"

	httpclient "github.com/natserract/skuvault/pkg/http"
)

// Product describes a catalog product for the create/update endpoints.
// Field names follow the vendor's PascalCase convention.
type Product struct {
	Sku              string            `json:"Sku"`
	Description      string            `json:"Description,omitempty"`
	ShortDescription string            `json:"ShortDescription,omitempty"`
	LongDescription  string            `json:"LongDescription,omitempty"`
	Classification   string            `json:"Classification,omitempty"`
	Supplier         string            `json:"Supplier,omitempty"`
	Brand            string            `json:"Brand,omitempty"`
	Code             string            `json:"Code,omitempty"`
	PartNumber       string            `json:"PartNumber,omitempty"`
	Cost             float64           `json:"Cost,omitempty"`
	SalePrice        float64           `json:"SalePrice,omitempty"`
	RetailPrice      float64           `json:"RetailPrice,omitempty"`
	AllowCreateAt    string            `json:"AllowCreateAt,omitempty"`
	IsSerialized     bool              `json:"IsSerialized,omitempty"`
	IsLotted         bool              `json:"IsLotted,omitempty"`
	Pictures         []string          `json:"Pictures,omitempty"`
	Attributes       map[string]string `json:"Attributes,omitempty"`
}

// Brand is a product brand record for CreateBrands.
type Brand struct {
	Name string `json:"Name"`
}

// Supplier is a supplier record for CreateSuppliers.
type Supplier struct {
	Name string `json:"Name"`
}

// GetProductsOptions narrows a GetProducts call. Zero values are omitted
// from the request body. Date fields accept anything NormalizeDate does.
type GetProductsOptions struct {
	PageNumber                int
	PageSize                  int
	ModifiedAfterDateTimeUtc  interface{}
	ModifiedBeforeDateTimeUtc interface{}
	ProductSKUs               []string
	ProductCodes              []string
}

// CreateProduct creates a single catalog product.
func (c *Client) CreateProduct(ctx context.Context, product Product) (*httpclient.Response, error) {
	return c.post(ctx, "products/createProduct", productFields(product), nil)
}

// CreateProducts creates catalog products in bulk. The vendor caps a single
// call at 100 products.
func (c *Client) CreateProducts(ctx context.Context, products []Product) (*httpclient.Response, error) {
	fields := NewPayload().Set("Items", products)
	return c.post(ctx, "products/createProducts", fields, nil)
}

// UpdateProduct updates a single catalog product, matched by Sku.
func (c *Client) UpdateProduct(ctx context.Context, product Product) (*httpclient.Response, error) {
	return c.post(ctx, "products/updateProduct", productFields(product), nil)
}

// UpdateProducts updates catalog products in bulk.
func (c *Client) UpdateProducts(ctx context.Context, products []Product) (*httpclient.Response, error) {
	fields := NewPayload().Set("Items", products)
	return c.post(ctx, "products/updateProducts", fields, nil)
}

// GetProducts retrieves a page of catalog products.
func (c *Client) GetProducts(ctx context.Context, opts GetProductsOptions) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("PageNumber", opts.PageNumber).
		Set("PageSize", opts.PageSize)
	if opts.ModifiedAfterDateTimeUtc != nil {
		fields.Set("ModifiedAfterDateTimeUtc", FormatDate(NormalizeDate(opts.ModifiedAfterDateTimeUtc)))
	}
	if opts.ModifiedBeforeDateTimeUtc != nil {
		fields.Set("ModifiedBeforeDateTimeUtc", FormatDate(NormalizeDate(opts.ModifiedBeforeDateTimeUtc)))
	}
	if len(opts.ProductSKUs) > 0 {
		fields.Set("ProductSKUs", opts.ProductSKUs)
	}
	if len(opts.ProductCodes) > 0 {
		fields.Set("ProductCodes", opts.ProductCodes)
	}
	return c.post(ctx, "products/getProducts", fields, nil)
}

// CreateBrands creates brands in bulk.
func (c *Client) CreateBrands(ctx context.Context, brands []Brand) (*httpclient.Response, error) {
	fields := NewPayload().Set("Brands", brands)
	return c.post(ctx, "products/createBrands", fields, nil)
}

// GetBrands retrieves a page of brands.
func (c *Client) GetBrands(ctx context.Context, pageNumber, pageSize int) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("PageNumber", pageNumber).
		Set("PageSize", pageSize)
	return c.post(ctx, "products/getBrands", fields, nil)
}

// CreateSuppliers creates suppliers in bulk.
func (c *Client) CreateSuppliers(ctx context.Context, suppliers []Supplier) (*httpclient.Response, error) {
	fields := NewPayload().Set("Suppliers", suppliers)
	return c.post(ctx, "products/createSuppliers", fields, nil)
}

// GetSuppliers retrieves all suppliers.
func (c *Client) GetSuppliers(ctx context.Context) (*httpclient.Response, error) {
	return c.post(ctx, "products/getSuppliers", NewPayload(), nil)
}

// GetClassifications retrieves all product classifications.
func (c *Client) GetClassifications(ctx context.Context) (*httpclient.Response, error) {
	return c.post(ctx, "products/getClassifications", NewPayload(), nil)
}

// GetKitQuantities retrieves a page of kit quantities.
func (c *Client) GetKitQuantities(ctx context.Context, pageNumber, pageSize int, kitSKUs []string) (*httpclient.Response, error) {
	fields := NewPayload().
		Set("PageNumber", pageNumber).
		Set("PageSize", pageSize)
	if len(kitSKUs) > 0 {
		fields.Set("KitSKUs", kitSKUs)
	}
	return c.post(ctx, "products/getKitQuantities", fields, nil)
}

// productFields flattens a product into request fields, dropping empty
// optionals the same way the JSON encoder would.
func productFields(p Product) *Payload {
	fields := NewPayload().Set("Sku", p.Sku)
	setIfNotEmpty := func(key, value string) {
		if value != "" {
			fields.Set(key, value)
		}
	}
	setIfNotEmpty("Description", p.Description)
	setIfNotEmpty("ShortDescription", p.ShortDescription)
	setIfNotEmpty("LongDescription", p.LongDescription)
	setIfNotEmpty("Classification", p.Classification)
	setIfNotEmpty("Supplier", p.Supplier)
	setIfNotEmpty("Brand", p.Brand)
	setIfNotEmpty("Code", p.Code)
	setIfNotEmpty("PartNumber", p.PartNumber)
	if p.Cost != 0 {
		fields.Set("Cost", p.Cost)
	}
	if p.SalePrice != 0 {
		fields.Set("SalePrice", p.SalePrice)
	}
	if p.RetailPrice != 0 {
		fields.Set("RetailPrice", p.RetailPrice)
	}
	setIfNotEmpty("AllowCreateAt", p.AllowCreateAt)
	if p.IsSerialized {
		fields.Set("IsSerialized", true)
	}
	if p.IsLotted {
		fields.Set("IsLotted", true)
	}
	if len(p.Pictures) > 0 {
		fields.Set("Pictures", p.Pictures)
	}
	if len(p.Attributes) > 0 {
		fields.Set("Attributes", p.Attributes)
	}
	return fields
}

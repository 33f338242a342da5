package fossoapi

import (
	"context"
	"log/slog"
	"net/http"

	"fosso/internal/core/ports"
	"fosso/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CatalogClient implements ports.CatalogClient via the catalog service HTTP API.
type CatalogClient struct {
	baseClient
}

type variantPayload struct {
	Color         string `json:"color"`
	Size          string `json:"size"`
	StockQuantity int    `json:"stockQuantity"`
}

// productPayload mirrors the catalog service product JSON in both directions.
type productPayload struct {
	ProductID     string           `json:"productId"`
	MerchantID    string           `json:"merchantId"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice decimal.Decimal  `json:"discountPrice"`
	ShippingCost  decimal.Decimal  `json:"shippingCost"`
	Variants      []variantPayload `json:"variants"`
}

// NewCatalogClient creates a catalog service client with the default timeout.
func NewCatalogClient(baseURL string, logger *slog.Logger) (*CatalogClient, error) {
	base, err := newBaseClient(baseURL, logger)
	if err != nil {
		return nil, err
	}
	return &CatalogClient{baseClient: base}, nil
}

// GetProduct fetches the catalog snapshot for a product.
func (c *CatalogClient) GetProduct(ctx context.Context, productID string) (*ports.Product, error) {
	resp, err := c.do(ctx, http.MethodGet, []string{"/api/v1/products/", productID}, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data productPayload
		if err := decodeJSON(resp, &data); err != nil {
			return nil, err
		}
		return productFromPayload(data), nil
	case http.StatusNotFound:
		return nil, errs.NewObjectNotFoundError("product", productID)
	default:
		return nil, c.unexpectedStatus("get product", resp)
	}
}

// Save persists a modified product snapshot, including decremented variant stock.
func (c *CatalogClient) Save(ctx context.Context, product *ports.Product) error {
	payload := payloadFromProduct(product)

	resp, err := c.do(ctx, http.MethodPut, []string{"/api/v1/products/", product.ProductID}, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return errs.NewObjectNotFoundError("product", product.ProductID)
	default:
		return c.unexpectedStatus("save product", resp)
	}
}

func productFromPayload(data productPayload) *ports.Product {
	variants := make([]ports.Variant, 0, len(data.Variants))
	for _, v := range data.Variants {
		variants = append(variants, ports.Variant{
			Color:         v.Color,
			Size:          v.Size,
			StockQuantity: v.StockQuantity,
		})
	}
	return &ports.Product{
		ProductID:     data.ProductID,
		MerchantID:    data.MerchantID,
		Name:          data.Name,
		Price:         data.Price,
		DiscountPrice: data.DiscountPrice,
		ShippingCost:  data.ShippingCost,
		Variants:      variants,
	}
}

func payloadFromProduct(product *ports.Product) productPayload {
	variants := make([]variantPayload, 0, len(product.Variants))
	for _, v := range product.Variants {
		variants = append(variants, variantPayload{
			Color:         v.Color,
			Size:          v.Size,
			StockQuantity: v.StockQuantity,
		})
	}
	return productPayload{
		ProductID:     product.ProductID,
		MerchantID:    product.MerchantID,
		Name:          product.Name,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		ShippingCost:  product.ShippingCost,
		Variants:      variants,
	}
}

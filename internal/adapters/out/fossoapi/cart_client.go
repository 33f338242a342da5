package fossoapi

import (
	"context"
	"log/slog"
	"net/http"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/ports"
	"fosso/internal/pkg/errs"
)

// CartClient implements ports.CartClient via the cart service HTTP API.
type CartClient struct {
	baseClient
}

// cartItemResponse mirrors one cart line in the cart service JSON payload.
type cartItemResponse struct {
	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type cartResponse struct {
	Items []cartItemResponse `json:"items"`
}

// NewCartClient creates a cart service client with the default timeout.
func NewCartClient(baseURL string, logger *slog.Logger) (*CartClient, error) {
	base, err := newBaseClient(baseURL, logger)
	if err != nil {
		return nil, err
	}
	return &CartClient{baseClient: base}, nil
}

// ListItems returns the customer's current cart contents.
func (c *CartClient) ListItems(ctx context.Context, customerID kernel.UUID) ([]ports.CartItem, error) {
	resp, err := c.do(ctx, http.MethodGet, []string{"/api/v1/carts/", customerID.String(), "/items"}, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data cartResponse
		if err := decodeJSON(resp, &data); err != nil {
			return nil, err
		}
		items := make([]ports.CartItem, 0, len(data.Items))
		for _, item := range data.Items {
			items = append(items, ports.CartItem{
				ProductID: item.ProductID,
				Color:     item.Color,
				Size:      item.Size,
				Quantity:  item.Quantity,
			})
		}
		return items, nil
	case http.StatusNotFound:
		return nil, errs.NewObjectNotFoundError("cart", customerID)
	default:
		return nil, c.unexpectedStatus("list cart items", resp)
	}
}

// Clear empties the customer's cart after a successful checkout.
func (c *CartClient) Clear(ctx context.Context, customerID kernel.UUID) error {
	resp, err := c.do(ctx, http.MethodDelete, []string{"/api/v1/carts/", customerID.String()}, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return errs.NewObjectNotFoundError("cart", customerID)
	default:
		return c.unexpectedStatus("clear cart", resp)
	}
}

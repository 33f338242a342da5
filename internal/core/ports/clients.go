package ports

import (
	"context"
	"strings"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a customer's shopping cart as reported by the cart service.
type CartItem struct {
	ProductID string
	Color     string
	Size      string
	Quantity  int
}

// Variant is a specific color/size combination of a product with its own stock count.
type Variant struct {
	Color         string
	Size          string
	StockQuantity int
}

// Product is the catalog snapshot used during checkout. Prices and shipping
// cost are copied into the order's line items; the variants carry the stock
// counts that checkout decrements.
type Product struct {
	ProductID     string
	MerchantID    string
	Name          string
	Price         decimal.Decimal
	DiscountPrice decimal.Decimal
	ShippingCost  decimal.Decimal
	Variants      []Variant
}

// FindVariant locates the variant matching the given color and size.
// The comparison is case-insensitive. Returns nil when no variant matches.
// The returned pointer aliases the product's slice so stock mutations stick.
func (p *Product) FindVariant(color, size string) *Variant {
	for i := range p.Variants {
		if strings.EqualFold(p.Variants[i].Color, color) && strings.EqualFold(p.Variants[i].Size, size) {
			return &p.Variants[i]
		}
	}
	return nil
}

// CartClient is the cart service collaborator consumed during checkout.
type CartClient interface {
	// ListItems returns the customer's current cart contents.
	ListItems(ctx context.Context, customerID kernel.UUID) ([]CartItem, error)

	// Clear empties the customer's cart after a successful checkout.
	Clear(ctx context.Context, customerID kernel.UUID) error
}

// CatalogClient is the product catalog collaborator consumed during checkout.
type CatalogClient interface {
	// GetProduct fetches the catalog snapshot for a product.
	GetProduct(ctx context.Context, productID string) (*Product, error)

	// Save persists a modified product snapshot, including decremented variant
	// stock. Each product is saved individually as checkout walks the cart.
	Save(ctx context.Context, product *Product) error
}

// CustomerClient is the customer service collaborator used to resolve saved addresses.
type CustomerClient interface {
	// GetAddress resolves one of the customer's saved addresses by id.
	GetAddress(ctx context.Context, customerID kernel.UUID, addressID string) (*order.Address, error)
}

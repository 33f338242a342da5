package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/domain/model/order"
	"fosso/internal/core/domain/services"
	"fosso/internal/core/ports"
	"fosso/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checkout is attempted with no items in the cart.
var ErrCartIsEmpty = errors.New("cart is empty")

// CheckoutResult identifies the order created by a successful checkout.
type CheckoutResult struct {
	OrderID        kernel.UUID
	TrackingNumber kernel.TrackingNumber
}

// CheckoutCommandHandler handles the business logic for checkout.
// Assembles an order from the customer's cart: resolves the shipping address,
// snapshots each cart line against the catalog, decrements variant stock,
// prices the order, persists it, and clears the cart.
//
// Stock decrements are saved to the catalog per product as the cart is walked,
// and the cart is cleared only after the order commits. Neither side effect is
// rolled back if a later step fails.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, cart, catalog, customers, pricer)
//	cmd, _ := NewCheckoutCommand(customerID, "addr-1", order.PaymentMethodCard)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// Order is persisted and the cart has been emptied
type CheckoutCommandHandler struct {
	uowFactory     OrderUoWFactory
	cartClient     ports.CartClient
	catalogClient  ports.CatalogClient
	customerClient ports.CustomerClient
	pricer         services.PricingEngine
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires an OrderUoWFactory for transactional persistence and clients for
// the cart, catalog, and customer collaborator services.
func NewCheckoutCommandHandler(
	uowFactory OrderUoWFactory,
	cartClient ports.CartClient,
	catalogClient ports.CatalogClient,
	customerClient ports.CustomerClient,
	pricer services.PricingEngine,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:     uowFactory,
		cartClient:     cartClient,
		catalogClient:  catalogClient,
		customerClient: customerClient,
		pricer:         pricer,
	}
}

// Handle processes the checkout command.
// Returns ErrCartIsEmpty when the customer's cart has no items, a not-found
// error when the address cannot be resolved, and an invalid-value error when a
// cart line references an unknown variant or exceeds the available stock.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	items, err := h.cartClient.ListItems(ctx, cmd.CustomerID())
	if err != nil {
		return CheckoutResult{}, err
	}
	if len(items) == 0 {
		return CheckoutResult{}, ErrCartIsEmpty
	}

	address, err := h.customerClient.GetAddress(ctx, cmd.CustomerID(), cmd.AddressID())
	if err != nil {
		return CheckoutResult{}, err
	}

	now := time.Now()

	details := make([]*order.Detail, 0, len(items))
	for _, item := range items {
		detail, err := h.reserveLineItem(ctx, item, now)
		if err != nil {
			return CheckoutResult{}, err
		}
		details = append(details, detail)
	}

	totals, err := h.pricer.Quote(details)
	if err != nil {
		return CheckoutResult{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.GenerateTrackingNumber(),
		cmd.CustomerID(),
		cmd.PaymentMethod(),
		*address,
		details,
		totals,
		now,
	)
	if err != nil {
		return CheckoutResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CheckoutResult{}, err
	}

	if err = h.cartClient.Clear(ctx, cmd.CustomerID()); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{
		OrderID:        newOrder.ID(),
		TrackingNumber: newOrder.TrackingNumber(),
	}, nil
}

// reserveLineItem snapshots one cart line against the catalog and decrements
// the variant's stock. The decremented product is saved back immediately, so a
// failure on a later line leaves earlier decrements in place.
func (h *CheckoutCommandHandler) reserveLineItem(
	ctx context.Context,
	item ports.CartItem,
	now time.Time,
) (*order.Detail, error) {
	product, err := h.catalogClient.GetProduct(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}

	variant := product.FindVariant(item.Color, item.Size)
	if variant == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"variant",
			fmt.Errorf("product %s has no variant %s/%s", item.ProductID, item.Color, item.Size),
		)
	}
	if variant.StockQuantity < item.Quantity {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("product %s variant %s/%s has %d in stock, %d requested",
				item.ProductID, item.Color, item.Size, variant.StockQuantity, item.Quantity),
		)
	}

	variant.StockQuantity -= item.Quantity
	if err = h.catalogClient.Save(ctx, product); err != nil {
		return nil, err
	}

	// The discount price wins over the list price when one is set.
	price := product.Price
	if product.DiscountPrice.IsPositive() {
		price = product.DiscountPrice
	}

	return order.NewDetail(
		product.MerchantID,
		product.ProductID,
		product.Name,
		item.Quantity,
		item.Color,
		item.Size,
		price,
		product.ShippingCost,
		now,
	)
}

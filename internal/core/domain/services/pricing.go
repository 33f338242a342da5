package services

import (
	"fosso/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Pricing rates and thresholds. The checkout and cancellation tax rates differ
// on purpose: recomputation after a partial cancellation applies the higher
// rate, matching the billing rules this system inherited.
var (
	// freeShippingThreshold is the subtotal above which shipping is free at checkout.
	freeShippingThreshold = decimal.NewFromInt(100)

	// checkoutTaxRate is applied when totals are first computed at checkout.
	checkoutTaxRate = decimal.RequireFromString("0.08")

	// cancellationTaxRate is applied when totals are recomputed after a
	// line-item cancellation.
	cancellationTaxRate = decimal.RequireFromString("0.10")
)

// PricingEngine is a domain service that computes and recomputes the monetary
// breakdown of an order.
//
// Key responsibilities:
//   - Computing checkout totals from line item snapshots
//   - Rebalancing totals when a line item is cancelled
//
// Business rules:
//   - Products cost is the sum of unit prices and is never re-derived after checkout
//   - Shipping is free when the checkout subtotal exceeds the free-shipping threshold
//   - Tax is a flat rate over the subtotal; the rate differs between checkout
//     and cancellation recomputation
//   - The total always equals subtotal + shipping + tax
//
// Example usage:
//
//	pricer := services.NewPricingEngine()
//	totals, err := pricer.Quote(details)
//	if err != nil {
//	    // Handle pricing failure
//	}
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Quote computes the checkout totals from the order's line item snapshots.
//
// The breakdown is:
//   - productsCost: sum of unit prices over all line items (not quantity-weighted)
//   - subtotal: sum of line subtotals (unit price multiplied by quantity)
//   - shippingCost: sum of line shipping costs, forced to zero when the
//     subtotal exceeds the free-shipping threshold
//   - tax: subtotal multiplied by the checkout tax rate
//   - total: subtotal + shippingCost + tax
func (PricingEngine) Quote(details []*order.Detail) (order.Totals, error) {
	productsCost := decimal.Zero
	subtotal := decimal.Zero
	shippingCost := decimal.Zero

	for _, detail := range details {
		productsCost = productsCost.Add(detail.Price())
		subtotal = subtotal.Add(detail.Subtotal())
		shippingCost = shippingCost.Add(detail.ShippingCost())
	}

	if subtotal.GreaterThan(freeShippingThreshold) {
		shippingCost = decimal.Zero
	}

	tax := subtotal.Mul(checkoutTaxRate)
	total := subtotal.Add(shippingCost).Add(tax)

	return order.NewTotals(productsCost, subtotal, shippingCost, tax, total)
}

// Rebalance recomputes totals after a line item has been cancelled.
//
// The cancelled line's subtotal and shipping cost are subtracted, tax is
// recomputed over the remaining subtotal at the cancellation tax rate, and the
// total is re-derived. The products cost is carried over unchanged.
func (PricingEngine) Rebalance(totals order.Totals, cancelled *order.Detail) (order.Totals, error) {
	subtotal := totals.Subtotal().Sub(cancelled.Subtotal())
	shippingCost := totals.ShippingCost().Sub(cancelled.ShippingCost())
	tax := subtotal.Mul(cancellationTaxRate)
	total := subtotal.Add(shippingCost).Add(tax)

	return order.NewTotals(totals.ProductsCost(), subtotal, shippingCost, tax, total)
}

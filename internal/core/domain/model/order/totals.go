package order

import (
	"fmt"

	"fosso/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrTotalsAreNotConstructed indicates that a Totals value was not created via NewTotals.
var ErrTotalsAreNotConstructed = errs.NewValueIsRequiredError("totals must be created via NewTotals")

// Totals is the monetary breakdown of an order. It is an immutable value object;
// recomputation after a cancellation produces a new Totals value rather than
// mutating the existing one.
//
// The breakdown always satisfies total = subtotal + shippingCost + tax.
// ProductsCost is computed once at checkout and never re-derived afterwards.
type Totals struct {
	productsCost decimal.Decimal
	subtotal     decimal.Decimal
	shippingCost decimal.Decimal
	tax          decimal.Decimal
	total        decimal.Decimal

	isConstructed bool
}

// NewTotals creates a Totals value and verifies the arithmetic invariant
// total = subtotal + shippingCost + tax.
func NewTotals(productsCost, subtotal, shippingCost, tax, total decimal.Decimal) (Totals, error) {
	if expected := subtotal.Add(shippingCost).Add(tax); !total.Equal(expected) {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%s does not equal subtotal %s + shipping %s + tax %s",
				total, subtotal, shippingCost, tax),
		)
	}

	return Totals{
		productsCost:  productsCost,
		subtotal:      subtotal,
		shippingCost:  shippingCost,
		tax:           tax,
		total:         total,
		isConstructed: true,
	}, nil
}

// Validate checks that the Totals value was created via NewTotals.
func (t Totals) Validate() error {
	if !t.isConstructed {
		return ErrTotalsAreNotConstructed
	}
	return nil
}

// ProductsCost returns the sum of unit prices captured at checkout.
func (t Totals) ProductsCost() decimal.Decimal {
	return t.productsCost
}

// Subtotal returns the sum of subtotals over non-cancelled line items.
func (t Totals) Subtotal() decimal.Decimal {
	return t.subtotal
}

// ShippingCost returns the aggregate shipping cost.
func (t Totals) ShippingCost() decimal.Decimal {
	return t.shippingCost
}

// Tax returns the tax amount.
func (t Totals) Tax() decimal.Decimal {
	return t.tax
}

// Total returns the amount charged: subtotal + shipping cost + tax.
func (t Totals) Total() decimal.Decimal {
	return t.total
}

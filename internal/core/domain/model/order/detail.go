package order

import (
	"strings"
	"time"

	"fosso/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Detail is a single line item within an order: one product variant with the
// quantity ordered and the prices in effect at checkout time.
//
// The unit price and shipping cost are snapshots frozen at checkout, so later
// catalog price changes never alter historical orders. The line subtotal is
// unit price multiplied by quantity.
//
// Each detail carries its own Track so fulfillment can progress per line item.
// Once a detail's track reaches Cancelled the line is terminal: it is excluded
// from status aggregation and from every later totals recomputation.
type Detail struct {
	merchantID   string
	productID    string
	productName  string
	quantity     int
	color        string
	size         string
	price        decimal.Decimal
	shippingCost decimal.Decimal
	subtotal     decimal.Decimal
	track        Track
}

// NewDetail creates a line item snapshot at checkout time.
// The subtotal is derived from the unit price and quantity, and the track is
// initialized in the New status dated today.
func NewDetail(
	merchantID, productID, productName string,
	quantity int,
	color, size string,
	price, shippingCost decimal.Decimal,
	today time.Time,
) (*Detail, error) {
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("product id")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, nil)
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidError("price")
	}
	if shippingCost.IsNegative() {
		return nil, errs.NewValueIsInvalidError("shipping cost")
	}

	return &Detail{
		merchantID:   merchantID,
		productID:    productID,
		productName:  productName,
		quantity:     quantity,
		color:        color,
		size:         size,
		price:        price,
		shippingCost: shippingCost,
		subtotal:     price.Mul(decimal.NewFromInt(int64(quantity))),
		track:        NewTrack(today),
	}, nil
}

// RestoreDetail reconstructs a line item from persistent storage.
// Unlike NewDetail it takes the stored subtotal and track as-is.
func RestoreDetail(
	merchantID, productID, productName string,
	quantity int,
	color, size string,
	price, shippingCost, subtotal decimal.Decimal,
	track Track,
) *Detail {
	return &Detail{
		merchantID:   merchantID,
		productID:    productID,
		productName:  productName,
		quantity:     quantity,
		color:        color,
		size:         size,
		price:        price,
		shippingCost: shippingCost,
		subtotal:     subtotal,
		track:        track,
	}
}

// MerchantID returns the merchant that sells the product.
func (d *Detail) MerchantID() string {
	return d.merchantID
}

// ProductID returns the catalog identifier of the product.
func (d *Detail) ProductID() string {
	return d.productID
}

// ProductName returns the product name captured at checkout.
func (d *Detail) ProductName() string {
	return d.productName
}

// Quantity returns how many units were ordered.
func (d *Detail) Quantity() int {
	return d.quantity
}

// Color returns the variant color.
func (d *Detail) Color() string {
	return d.color
}

// Size returns the variant size.
func (d *Detail) Size() string {
	return d.size
}

// Price returns the unit price frozen at checkout.
func (d *Detail) Price() decimal.Decimal {
	return d.price
}

// ShippingCost returns the line shipping cost frozen at checkout.
func (d *Detail) ShippingCost() decimal.Decimal {
	return d.shippingCost
}

// Subtotal returns the line subtotal: unit price multiplied by quantity.
func (d *Detail) Subtotal() decimal.Decimal {
	return d.subtotal
}

// Track returns the line item's fulfillment track.
func (d *Detail) Track() Track {
	return d.track
}

// IsCancelled reports whether the line item has been cancelled.
func (d *Detail) IsCancelled() bool {
	return d.track.status.IsCancelled()
}

// Matches reports whether this line item is the one identified by the given
// product id and variant. Color and size compare case-insensitively.
func (d *Detail) Matches(productID, color, size string) bool {
	return d.productID == productID &&
		strings.EqualFold(d.color, color) &&
		strings.EqualFold(d.size, size)
}

// applyStatus sets the track status without touching notes or the update date.
// Used by order-level status propagation.
func (d *Detail) applyStatus(status Status) {
	d.track.status = status
}

// updateTrack records a line-item status update: status, notes, and the update date.
func (d *Detail) updateTrack(status Status, notes string, today time.Time) {
	d.track.status = status
	d.track.notes = notes
	d.track.updatedTime = today
}

// cancel marks the line item cancelled with the given notes.
// The track's update date is intentionally left as-is; only line-item status
// updates refresh it.
func (d *Detail) cancel(notes string) {
	d.track.status = Cancelled
	d.track.notes = notes
}

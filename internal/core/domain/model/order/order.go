package order

import (
	"errors"
	"fmt"
	"time"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/pkg/errs"
)

// deliveryLeadDays is the promised delivery window applied at checkout.
const deliveryLeadDays = 2

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// ErrOrderHasNoDetails is returned when attempting to create an order without line items.
var ErrOrderHasNoDetails = errs.NewValueIsRequiredError("order must contain at least one line item")

// TotalsRebalancer recomputes order totals after a line item is cancelled.
// It is implemented by the pricing service and passed into CancelLineItem so
// the aggregate can keep its financial invariant in one step.
type TotalsRebalancer interface {
	Rebalance(totals Totals, cancelled *Detail) (Totals, error)
}

// Order represents a committed checkout. It is the aggregate root that manages
// the order lifecycle: status propagation to line items, aggregation of
// line-item statuses back into the order-level status, and financial
// recomputation on partial cancellation.
//
// Order maintains these invariants:
//   - total = subtotal + shippingCost + tax after creation and after every recomputation
//   - subtotal equals the sum of subtotals over non-cancelled line items
//   - a cancelled line item is terminal and excluded from all future aggregation
//   - a Shipped or Delivered order can never transition to Cancelled
//
// All mutations bump the aggregate version; the persistence layer uses the
// version for compare-and-swap updates so concurrent writers cannot silently
// clobber each other.
type Order struct {
	id              kernel.UUID
	trackingNumber  kernel.TrackingNumber
	customerID      kernel.UUID
	paymentMethod   PaymentMethod
	shippingAddress Address
	orderDateTime   time.Time
	totals          Totals
	deliveryDays    int
	deliveryDate    time.Time
	status          Status
	details         []*Detail
	createdAt       time.Time
	updatedAt       time.Time
	version         int64

	isConstructed bool
}

// NewOrder creates a committed order from checkout output. The order starts in
// the New status with a delivery promise of two days from now.
//
// Parameters:
//   - id: internal order identifier
//   - trackingNumber: externally visible identifier
//   - customerID: the customer who checked out
//   - paymentMethod: how the order is paid
//   - shippingAddress: address snapshot resolved at checkout
//   - details: line item snapshots, one per cart line (must be non-empty)
//   - totals: monetary breakdown computed by the pricing service
//   - now: checkout timestamp
func NewOrder(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	customerID kernel.UUID,
	paymentMethod PaymentMethod,
	shippingAddress Address,
	details []*Detail,
	totals Totals,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		trackingNumber.Validate(),
		customerID.Validate(),
		paymentMethod.Validate(),
		shippingAddress.Validate(),
		totals.Validate(),
	); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrOrderHasNoDetails
	}

	return &Order{
		id:              id,
		trackingNumber:  trackingNumber,
		customerID:      customerID,
		paymentMethod:   paymentMethod,
		shippingAddress: shippingAddress,
		orderDateTime:   now,
		totals:          totals,
		deliveryDays:    deliveryLeadDays,
		deliveryDate:    now.AddDate(0, 0, deliveryLeadDays),
		status:          New,
		details:         details,
		createdAt:       now,
		updatedAt:       now,
		version:         1,
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage.
// Unlike NewOrder it takes the stored status, timestamps, and version as-is.
func RestoreOrder(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	customerID kernel.UUID,
	paymentMethod PaymentMethod,
	shippingAddress Address,
	orderDateTime time.Time,
	totals Totals,
	deliveryDays int,
	deliveryDate time.Time,
	status Status,
	details []*Detail,
	createdAt, updatedAt time.Time,
	version int64,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		trackingNumber.Validate(),
		customerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		trackingNumber:  trackingNumber,
		customerID:      customerID,
		paymentMethod:   paymentMethod,
		shippingAddress: shippingAddress,
		orderDateTime:   orderDateTime,
		totals:          totals,
		deliveryDays:    deliveryDays,
		deliveryDate:    deliveryDate,
		status:          status,
		details:         details,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		version:         version,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory function.
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the internal order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TrackingNumber returns the externally visible order identifier.
func (o *Order) TrackingNumber() kernel.TrackingNumber {
	return o.trackingNumber
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// ShippingAddress returns the address snapshot copied at creation.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// OrderDateTime returns when the order was placed.
func (o *Order) OrderDateTime() time.Time {
	return o.orderDateTime
}

// Totals returns the current monetary breakdown.
func (o *Order) Totals() Totals {
	return o.totals
}

// DeliveryDays returns the promised delivery window in days.
func (o *Order) DeliveryDays() int {
	return o.deliveryDays
}

// DeliveryDate returns the promised delivery date.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// Status returns the order-level aggregate status.
func (o *Order) Status() Status {
	return o.status
}

// Details returns the order's line items in checkout order.
func (o *Order) Details() []*Detail {
	return o.details
}

// CreatedAt returns when the aggregate was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the aggregate was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic concurrency version.
// It increments on every mutation and the repository refuses to persist
// writes based on a stale version.
func (o *Order) Version() int64 {
	return o.version
}

// UpdateStatus applies an order-level status override: the order status and
// every non-cancelled line item's track take the given value. Cancelled line
// items are left untouched.
//
// Cancelled cannot be assigned this way; cancellation must go through Cancel
// or CancelLineItem so totals stay consistent. Beyond that guard any valid
// status is accepted regardless of the current one.
func (o *Order) UpdateStatus(status Status, now time.Time) error {
	if err := status.ValidateAssignable(); err != nil {
		return err
	}

	o.status = status
	for _, detail := range o.details {
		if detail.IsCancelled() {
			continue
		}
		detail.applyStatus(status)
	}

	o.touch(now)
	return nil
}

// UpdateLineItemStatus applies a status update to a single line item and then
// re-derives the order-level status from the non-cancelled line items: when
// exactly one distinct status remains the order takes it, otherwise the order
// becomes Processing.
//
// Fails with a not-found error when no line item matches (productID, color,
// size), and with an invalid-state error when the matched line item is already
// cancelled. Cancelled cannot be assigned this way.
func (o *Order) UpdateLineItemStatus(
	productID, color, size string,
	status Status,
	notes string,
	today time.Time,
) error {
	if err := status.ValidateAssignable(); err != nil {
		return err
	}

	detail, err := o.findDetail(productID, color, size)
	if err != nil {
		return err
	}
	if detail.IsCancelled() {
		return errs.NewInvalidStateError("line item is already cancelled")
	}

	detail.updateTrack(status, notes, today)
	o.status = o.aggregateStatus()

	o.touch(today)
	return nil
}

// Cancel cancels the whole order: the order status and every non-cancelled
// line item's track become Cancelled with the given notes. Track update dates
// are not refreshed by order-level cancellation.
//
// Fails with an invalid-state error when the order is already cancelled or has
// been shipped or delivered.
func (o *Order) Cancel(notes string, now time.Time) error {
	if err := o.status.ValidateCancellable(); err != nil {
		return err
	}

	o.status = Cancelled
	for _, detail := range o.details {
		if detail.IsCancelled() {
			continue
		}
		detail.cancel(notes)
	}

	o.touch(now)
	return nil
}

// CancelLineItem cancels a single line item and rebalances the order totals
// through the given rebalancer, keeping total = subtotal + shipping + tax.
// When every line item has been cancelled the order itself becomes Cancelled.
//
// Fails with a not-found error when no line item matches, and with an
// invalid-state error when the matched line item is already cancelled. A
// cancelled line is terminal, so it can never be subtracted from the totals twice.
func (o *Order) CancelLineItem(
	productID, color, size, notes string,
	rebalancer TotalsRebalancer,
	now time.Time,
) error {
	detail, err := o.findDetail(productID, color, size)
	if err != nil {
		return err
	}
	if detail.IsCancelled() {
		return errs.NewInvalidStateError("line item is already cancelled")
	}

	detail.cancel(notes)

	totals, err := rebalancer.Rebalance(o.totals, detail)
	if err != nil {
		return err
	}
	o.totals = totals

	allCancelled := true
	for _, d := range o.details {
		if !d.IsCancelled() {
			allCancelled = false
			break
		}
	}
	if allCancelled {
		o.status = Cancelled
	}

	o.touch(now)
	return nil
}

// findDetail locates the line item identified by product id and variant.
func (o *Order) findDetail(productID, color, size string) (*Detail, error) {
	for _, detail := range o.details {
		if detail.Matches(productID, color, size) {
			return detail, nil
		}
	}
	return nil, errs.NewObjectNotFoundError(
		"line item",
		fmt.Sprintf("%s/%s/%s", productID, color, size),
	)
}

// aggregateStatus derives the order-level status from the distinct statuses of
// non-cancelled line items: a single common value wins, otherwise Processing.
func (o *Order) aggregateStatus() Status {
	distinct := make(map[Status]struct{})
	for _, detail := range o.details {
		if detail.IsCancelled() {
			continue
		}
		distinct[detail.Track().Status()] = struct{}{}
	}

	if len(distinct) == 1 {
		for status := range distinct {
			return status
		}
	}
	return Processing
}

// touch records a mutation: the update timestamp moves and the version increments.
func (o *Order) touch(now time.Time) {
	o.updatedAt = now
	o.version++
}

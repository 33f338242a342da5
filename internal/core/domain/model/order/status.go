package order

import (
	"fmt"

	"fosso/internal/pkg/errs"
)

// Status represents the lifecycle state of an order or of a single line item.
// Orders and line items share the same closed taxonomy; the order-level value
// is derived from the line-item values outside of explicit overrides.
//
// The taxonomy is deliberately permissive: apart from the cancellation guards
// there is no forward-only ordering, and the generic status update may assign
// any non-Cancelled value regardless of the current one.
//
// Status is a value object that validates assignments and provides string
// representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned at checkout.
	New

	// Processing indicates line items are in differing fulfillment states.
	Processing

	// Cancelled is terminal for a line item and excludes it from aggregation.
	// An order becomes Cancelled through the dedicated cancellation operations only.
	Cancelled

	// Shipped indicates the order has left the merchant.
	// A Shipped order can no longer be cancelled.
	Shipped

	// Delivered indicates the order has reached the customer.
	// A Delivered order can no longer be cancelled.
	Delivered

	// Returned indicates the customer has sent the order back.
	Returned

	// Paid indicates payment has been received.
	Paid

	// Completed indicates fulfillment has finished.
	Completed

	// Refunded indicates the payment has been returned to the customer.
	Refunded
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		New:        "NEW",
		Processing: "PROCESSING",
		Cancelled:  "CANCELLED",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Returned:   "RETURNED",
		Paid:       "PAID",
		Completed:  "COMPLETED",
		Refunded:   "REFUNDED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "NEW",
		Processing: "PROCESSING",
		Cancelled:  "CANCELLED",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Returned:   "RETURNED",
		Paid:       "PAID",
		Completed:  "COMPLETED",
		Refunded:   "REFUNDED",
	}
}

// StatusFromString parses a status from its persisted or API representation.
// Returns an error for unrecognized values and for "UNKNOWN".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsCancelled reports whether the status is Cancelled.
func (s Status) IsCancelled() bool {
	return s == Cancelled
}

// ValidateAssignable checks that the status may be applied through the generic
// status update operations. Cancelled is rejected there; cancellation must go
// through the dedicated cancel operations so that totals stay consistent.
func (s Status) ValidateAssignable() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s == Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s cannot be assigned through a status update, use the cancel operation", s),
		)
	}
	return nil
}

// ValidateCancellable checks that an order in this status may still be cancelled.
// Re-cancelling is rejected, as is cancelling once the order has shipped or
// been delivered.
func (s Status) ValidateCancellable() error {
	switch s {
	case Cancelled:
		return errs.NewInvalidStateError("order is already cancelled")
	case Shipped, Delivered:
		return errs.NewInvalidStateErrorWithCause(
			"order cannot be cancelled after it has been shipped or delivered",
			fmt.Errorf("status is %s", s),
		)
	default:
		return nil
	}
}

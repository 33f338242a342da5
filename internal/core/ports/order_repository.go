package ports

import (
	"context"
	"time"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored as one row per aggregate, keyed by the internal order id
// with a unique secondary key on the tracking number.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using a
	// version-checked compare-and-swap. It fails with a version error when the
	// stored aggregate has been modified since this one was loaded, so
	// concurrent writers cannot silently clobber each other.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByTrackingNumber retrieves an order by its externally visible identifier.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (*order.Order, error)

	// GetAllInStatusDueBy retrieves orders in the given status whose promised
	// delivery date is on or before the given date. Used by the delivery
	// completion job to find shipped orders that should have arrived.
	GetAllInStatusDueBy(ctx context.Context, status order.Status, dueBy time.Time) ([]*order.Order, error)
}

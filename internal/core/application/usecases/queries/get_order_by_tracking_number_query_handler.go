package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderByTrackingNumberQueryHandler retrieves a single order read model by
// tracking number. Returns the same full read model as GetOrderQueryHandler.
type GetOrderByTrackingNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByTrackingNumberQueryHandler creates a handler for tracking number lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByTrackingNumberQueryHandler(db *gorm.DB) GetOrderByTrackingNumberQueryHandler {
	return GetOrderByTrackingNumberQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its line items.
// Returns a not-found error when no order carries the tracking number.
func (h GetOrderByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByTrackingNumberQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return fetchOrder(ctx, h.db, "tracking_number = ?", query.TrackingNumber().String())
}

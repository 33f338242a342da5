package queries

import (
	"errors"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/pkg/guard"
)

var ErrGetOrderByTrackingNumberQueryIsNotConstructed = errors.New(
	"GetOrderByTrackingNumberQuery must be created via NewGetOrderByTrackingNumberQuery constructor",
)

// GetOrderByTrackingNumberQuery retrieves the full read model of a single
// order by its externally visible tracking number. This is the lookup
// customers use, so the input is validated against the tracking number format
// before any database work.
type GetOrderByTrackingNumberQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetOrderByTrackingNumberQuery creates a query to retrieve an order by
// tracking number. Validates that the tracking number is well formed.
func NewGetOrderByTrackingNumberQuery(trackingNumber kernel.TrackingNumber) (GetOrderByTrackingNumberQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetOrderByTrackingNumberQuery{}, err
	}

	return GetOrderByTrackingNumberQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByTrackingNumberQueryIsNotConstructed if validation fails.
func (q GetOrderByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByTrackingNumberQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number to look up.
func (q GetOrderByTrackingNumberQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"database/sql"
	"time"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSummary is the read model shared by the order list queries.
// Carries the identity, status, and headline amounts of one order.
type OrderSummary struct {
	ID             kernel.UUID
	TrackingNumber string
	CustomerID     kernel.UUID
	Status         string
	PaymentMethod  string
	Total          decimal.Decimal
	OrderDateTime  time.Time
	DeliveryDate   time.Time
}

// orderSummaryColumns is the projection every list query selects, in the order
// scanOrderSummaries expects.
const orderSummaryColumns = `
	id,
	tracking_number,
	customer_id,
	status,
	payment_method,
	total,
	order_date_time,
	delivery_date`

// scanOrderSummaries reads list query rows into summaries, converting stored
// enum values to their string names.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummary, error) {
	summaries := make([]OrderSummary, 0)

	for rows.Next() {
		var summary OrderSummary
		var id, customerID uuid.UUID
		var status, paymentMethod int

		err := rows.Scan(
			&id,
			&summary.TrackingNumber,
			&customerID,
			&status,
			&paymentMethod,
			&summary.Total,
			&summary.OrderDateTime,
			&summary.DeliveryDate,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.CustomerID = custID

		summary.Status = order.Status(status).String()
		summary.PaymentMethod = order.PaymentMethod(paymentMethod).String()
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

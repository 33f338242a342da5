package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListCustomerOrdersQueryHandler retrieves pages of one customer's orders.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomerOrdersQueryHandler creates a handler for customer order listings.
// Requires a GORM database connection for query execution.
func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query to list a customer's orders.
// Returns order summaries sorted by order date descending.
func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY order_date_time DESC
		LIMIT ? OFFSET ?
	`, query.CustomerID().Bytes(), query.Size(), offset(query.Page(), query.Size())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

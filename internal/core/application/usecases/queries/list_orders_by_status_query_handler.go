package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersByStatusQueryHandler retrieves pages of orders in a given status.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersByStatusQueryHandler creates a handler for status-filtered listings.
// Requires a GORM database connection for query execution.
func NewListOrdersByStatusQueryHandler(db *gorm.DB) ListOrdersByStatusQueryHandler {
	return ListOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query to list orders in the given status.
// Returns order summaries sorted by order date descending.
func (h ListOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByStatusQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE status = ?
		ORDER BY order_date_time DESC
		LIMIT ? OFFSET ?
	`, int(query.Status()), query.Size(), offset(query.Page(), query.Size())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersByDateRangeQueryHandler retrieves pages of orders placed within a
// time window. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type ListOrdersByDateRangeQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersByDateRangeQueryHandler creates a handler for date range listings.
// Requires a GORM database connection for query execution.
func NewListOrdersByDateRangeQueryHandler(db *gorm.DB) ListOrdersByDateRangeQueryHandler {
	return ListOrdersByDateRangeQueryHandler{db: db}
}

// Handle executes the query to list orders placed within the window.
// Returns order summaries sorted by order date descending.
func (h ListOrdersByDateRangeQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByDateRangeQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE order_date_time BETWEEN ? AND ?
		ORDER BY order_date_time DESC
		LIMIT ? OFFSET ?
	`, query.From(), query.To(), query.Size(), offset(query.Page(), query.Size())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListMerchantOrdersQueryHandler retrieves pages of orders that contain line
// items sold by one merchant. Joins through the order_details table since the
// merchant lives on the line item, not the order.
type ListMerchantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListMerchantOrdersQueryHandler creates a handler for merchant order listings.
// Requires a GORM database connection for query execution.
func NewListMerchantOrdersQueryHandler(db *gorm.DB) ListMerchantOrdersQueryHandler {
	return ListMerchantOrdersQueryHandler{db: db}
}

// Handle executes the query to list the merchant's orders.
// Returns order summaries sorted by order date descending. Orders with several
// of the merchant's line items appear once.
func (h ListMerchantOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListMerchantOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT `+orderSummaryColumns+`
		FROM orders
		WHERE id IN (
			SELECT order_id FROM order_details WHERE merchant_id = ?
		)
		ORDER BY order_date_time DESC
		LIMIT ? OFFSET ?
	`, query.MerchantID(), query.Size(), offset(query.Page(), query.Size())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

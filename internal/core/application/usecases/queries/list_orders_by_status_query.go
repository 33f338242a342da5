package queries

import (
	"errors"

	"fosso/internal/core/domain/model/order"
	"fosso/internal/pkg/guard"
)

var ErrListOrdersByStatusQueryIsNotConstructed = errors.New(
	"ListOrdersByStatusQuery must be created via NewListOrdersByStatusQuery constructor",
)

// ListOrdersByStatusQuery retrieves a page of orders in a given status,
// newest first. Used by back-office screens that work a status at a time.
type ListOrdersByStatusQuery struct {
	status order.Status
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewListOrdersByStatusQuery creates a query to list orders by status.
// Validates that the status is a known value and the pagination is in range.
func NewListOrdersByStatusQuery(status order.Status, page, size int) (ListOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return ListOrdersByStatusQuery{}, err
	}
	if err := validatePagination(page, size); err != nil {
		return ListOrdersByStatusQuery{}, err
	}

	return ListOrdersByStatusQuery{
		status: status,
		page:   page,
		size:   size,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersByStatusQueryIsNotConstructed if validation fails.
func (q ListOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status to filter by.
func (q ListOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// Page returns the one-based page number.
func (q ListOrdersByStatusQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q ListOrdersByStatusQuery) Size() int {
	return q.size
}

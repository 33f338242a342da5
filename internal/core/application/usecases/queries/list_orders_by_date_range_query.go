package queries

import (
	"errors"
	"time"

	"fosso/internal/pkg/guard"
)

var (
	ErrListOrdersByDateRangeQueryIsNotConstructed = errors.New(
		"ListOrdersByDateRangeQuery must be created via NewListOrdersByDateRangeQuery constructor",
	)
	ErrDateRangeIsInvalid = errors.New("from must not be after to")
)

// ListOrdersByDateRangeQuery retrieves a page of orders placed within a time
// window, newest first. The window is inclusive on both ends.
type ListOrdersByDateRangeQuery struct {
	from time.Time
	to   time.Time
	page int
	size int

	guard guard.ConstructorGuard
}

// NewListOrdersByDateRangeQuery creates a query to list orders by order date.
// Validates that the window is not inverted and the pagination is in range.
func NewListOrdersByDateRangeQuery(from, to time.Time, page, size int) (ListOrdersByDateRangeQuery, error) {
	if from.After(to) {
		return ListOrdersByDateRangeQuery{}, ErrDateRangeIsInvalid
	}
	if err := validatePagination(page, size); err != nil {
		return ListOrdersByDateRangeQuery{}, err
	}

	return ListOrdersByDateRangeQuery{
		from:  from,
		to:    to,
		page:  page,
		size:  size,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersByDateRangeQueryIsNotConstructed if validation fails.
func (q ListOrdersByDateRangeQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByDateRangeQueryIsNotConstructed)
}

// From returns the inclusive start of the window.
func (q ListOrdersByDateRangeQuery) From() time.Time {
	return q.from
}

// To returns the inclusive end of the window.
func (q ListOrdersByDateRangeQuery) To() time.Time {
	return q.to
}

// Page returns the one-based page number.
func (q ListOrdersByDateRangeQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q ListOrdersByDateRangeQuery) Size() int {
	return q.size
}

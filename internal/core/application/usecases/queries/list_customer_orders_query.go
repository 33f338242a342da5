package queries

import (
	"errors"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/pkg/guard"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// ListCustomerOrdersQuery retrieves a page of one customer's orders, newest first.
//
// Example:
//
//	query, err := NewListCustomerOrdersQuery(customerID, 1, 20)
//	if err != nil {
//	    return fmt.Errorf("invalid listing request: %w", err)
//	}
//
//	handler := NewListCustomerOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type ListCustomerOrdersQuery struct {
	customerID kernel.UUID
	page       int
	size       int

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery creates a query to list a customer's orders.
// Validates that the customer ID is valid and the pagination is in range.
func NewListCustomerOrdersQuery(customerID kernel.UUID, page, size int) (ListCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, err
	}
	if err := validatePagination(page, size); err != nil {
		return ListCustomerOrdersQuery{}, err
	}

	return ListCustomerOrdersQuery{
		customerID: customerID,
		page:       page,
		size:       size,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListCustomerOrdersQueryIsNotConstructed if validation fails.
func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q ListCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Page returns the one-based page number.
func (q ListCustomerOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q ListCustomerOrdersQuery) Size() int {
	return q.size
}

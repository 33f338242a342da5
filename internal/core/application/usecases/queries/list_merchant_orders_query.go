package queries

import (
	"errors"

	"fosso/internal/pkg/guard"
)

var (
	ErrListMerchantOrdersQueryIsNotConstructed = errors.New(
		"ListMerchantOrdersQuery must be created via NewListMerchantOrdersQuery constructor",
	)
	ErrMerchantIDIsRequired = errors.New("merchant id is required")
)

// ListMerchantOrdersQuery retrieves a page of orders containing at least one
// line item sold by the given merchant, newest first. Merchants see whole
// orders, not just their own lines, so they can coordinate mixed shipments.
type ListMerchantOrdersQuery struct {
	merchantID string
	page       int
	size       int

	guard guard.ConstructorGuard
}

// NewListMerchantOrdersQuery creates a query to list a merchant's orders.
// Validates that the merchant ID is not empty and the pagination is in range.
func NewListMerchantOrdersQuery(merchantID string, page, size int) (ListMerchantOrdersQuery, error) {
	if merchantID == "" {
		return ListMerchantOrdersQuery{}, ErrMerchantIDIsRequired
	}
	if err := validatePagination(page, size); err != nil {
		return ListMerchantOrdersQuery{}, err
	}

	return ListMerchantOrdersQuery{
		merchantID: merchantID,
		page:       page,
		size:       size,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListMerchantOrdersQueryIsNotConstructed if validation fails.
func (q ListMerchantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListMerchantOrdersQueryIsNotConstructed)
}

// MerchantID returns the merchant whose orders are listed.
func (q ListMerchantOrdersQuery) MerchantID() string {
	return q.merchantID
}

// Page returns the one-based page number.
func (q ListMerchantOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q ListMerchantOrdersQuery) Size() int {
	return q.size
}

package queries

import "errors"

// maxPageSize caps how many orders a single list query page may return.
const maxPageSize = 100

var (
	ErrPageIsInvalid    = errors.New("page must be greater than 0")
	ErrSizeIsOutOfRange = errors.New("size must be between 1 and 100")
)

// validatePagination checks the page and size parameters of a list query.
func validatePagination(page, size int) error {
	if page < 1 {
		return ErrPageIsInvalid
	}
	if size < 1 || size > maxPageSize {
		return ErrSizeIsOutOfRange
	}
	return nil
}

// offset converts one-based page numbers to a row offset.
func offset(page, size int) int {
	return (page - 1) * size
}

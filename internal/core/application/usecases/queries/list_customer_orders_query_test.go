package queries_test

import (
	"testing"

	"fosso/internal/core/application/usecases/queries"
	"fosso/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListCustomerOrdersQuery_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	query, err := queries.NewListCustomerOrdersQuery(customerID, 2, 20)
	require.NoError(t, err)
	assert.Equal(t, customerID, query.CustomerID())
	assert.Equal(t, 2, query.Page())
	assert.Equal(t, 20, query.Size())
}

func TestNewListCustomerOrdersQuery_InvalidCustomerID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := queries.NewListCustomerOrdersQuery(invalidID, 1, 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewListCustomerOrdersQuery_InvalidPage(t *testing.T) {
	customerID := kernel.NewUUID()
	_, err := queries.NewListCustomerOrdersQuery(customerID, 0, 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrPageIsInvalid)
}

func TestNewListCustomerOrdersQuery_SizeOutOfRange(t *testing.T) {
	customerID := kernel.NewUUID()

	_, err := queries.NewListCustomerOrdersQuery(customerID, 1, 0)
	require.ErrorIs(t, err, queries.ErrSizeIsOutOfRange)

	_, err = queries.NewListCustomerOrdersQuery(customerID, 1, 101)
	require.ErrorIs(t, err, queries.ErrSizeIsOutOfRange)
}

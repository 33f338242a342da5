package queries

import (
	"errors"
	"time"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full read model of a single order by its
// internal identifier, including the shipping address, totals, and line items.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", response.TrackingNumber, response.Status)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
// Validates that the order ID is valid.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	TrackingNumber  string
	CustomerID      kernel.UUID
	Status          string
	PaymentMethod   string
	ShippingAddress AddressResponse
	OrderDateTime   time.Time
	DeliveryDays    int
	DeliveryDate    time.Time
	Totals          TotalsResponse
	LineItems       []LineItemResponse
}

// AddressResponse is the shipping address snapshot in the read model.
type AddressResponse struct {
	AddressID    string
	AddressType  string
	PhoneNumber  string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
}

// TotalsResponse is the monetary breakdown in the read model.
type TotalsResponse struct {
	ProductsCost decimal.Decimal
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
}

// LineItemResponse is one order line in the read model, including its
// fulfillment track.
type LineItemResponse struct {
	MerchantID   string
	ProductID    string
	ProductName  string
	Quantity     int
	Color        string
	Size         string
	Price        decimal.Decimal
	ShippingCost decimal.Decimal
	Subtotal     decimal.Decimal
	Status       string
	UpdatedTime  time.Time
	Notes        string
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/domain/model/order"
	"fosso/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its line items.
// Returns a not-found error when no order matches the identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return fetchOrder(ctx, h.db, "id = ?", query.OrderID().Bytes())
}

// fetchOrder loads one order row plus its line items matching the given
// condition. Shared by the id and tracking number lookups.
func fetchOrder(
	ctx context.Context,
	db *gorm.DB,
	condition string,
	arg any,
) (GetOrderQueryResponse, error) {
	var response GetOrderQueryResponse

	row := db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			customer_id,
			status,
			payment_method,
			order_date_time,
			delivery_days,
			delivery_date,
			products_cost,
			subtotal,
			shipping_cost,
			tax,
			total,
			address_id,
			address_type,
			address_phone_number,
			address_line1,
			address_line2,
			address_city,
			address_state,
			address_postal_code,
			address_country
		FROM orders
		WHERE `+condition, arg).Row()

	var id, customerID uuid.UUID
	var status, paymentMethod int

	err := row.Scan(
		&id,
		&response.TrackingNumber,
		&customerID,
		&status,
		&paymentMethod,
		&response.OrderDateTime,
		&response.DeliveryDays,
		&response.DeliveryDate,
		&response.Totals.ProductsCost,
		&response.Totals.Subtotal,
		&response.Totals.ShippingCost,
		&response.Totals.Tax,
		&response.Totals.Total,
		&response.ShippingAddress.AddressID,
		&response.ShippingAddress.AddressType,
		&response.ShippingAddress.PhoneNumber,
		&response.ShippingAddress.AddressLine1,
		&response.ShippingAddress.AddressLine2,
		&response.ShippingAddress.City,
		&response.ShippingAddress.State,
		&response.ShippingAddress.PostalCode,
		&response.ShippingAddress.Country,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", arg)
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.ID = orderID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.CustomerID = custID

	response.Status = order.Status(status).String()
	response.PaymentMethod = order.PaymentMethod(paymentMethod).String()

	lineItems, err := fetchLineItems(ctx, db, id)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.LineItems = lineItems

	return response, nil
}

// fetchLineItems loads the line items of one order in insertion order.
func fetchLineItems(ctx context.Context, db *gorm.DB, orderID uuid.UUID) ([]LineItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			merchant_id,
			product_id,
			product_name,
			quantity,
			color,
			size,
			price,
			shipping_cost,
			subtotal,
			track_status,
			track_updated_time,
			track_notes
		FROM order_details
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lineItems := make([]LineItemResponse, 0)
	for rows.Next() {
		var item LineItemResponse
		var trackStatus int

		err = rows.Scan(
			&item.MerchantID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.Color,
			&item.Size,
			&item.Price,
			&item.ShippingCost,
			&item.Subtotal,
			&trackStatus,
			&item.UpdatedTime,
			&item.Notes,
		)
		if err != nil {
			return nil, err
		}

		item.Status = order.Status(trackStatus).String()
		lineItems = append(lineItems, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lineItems, nil
}

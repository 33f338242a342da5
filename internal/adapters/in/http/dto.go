package http

import (
	"time"

	"fosso/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type checkoutRequest struct {
	CustomerID    string `json:"customerId"`
	AddressID     string `json:"addressId"`
	PaymentMethod string `json:"paymentMethod"`
}

type checkoutResponse struct {
	OrderID        string `json:"orderId"`
	TrackingNumber string `json:"trackingNumber"`
}

type cancelOrderRequest struct {
	Notes string `json:"notes"`
}

type cancelLineItemRequest struct {
	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Notes     string `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type updateLineItemStatusRequest struct {
	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// Order is the full order read model returned by the single-order endpoints.
type Order struct {
	ID              string     `json:"id"`
	TrackingNumber  string     `json:"trackingNumber"`
	CustomerID      string     `json:"customerId"`
	Status          string     `json:"status"`
	PaymentMethod   string     `json:"paymentMethod"`
	ShippingAddress Address    `json:"shippingAddress"`
	OrderDateTime   time.Time  `json:"orderDateTime"`
	DeliveryDays    int        `json:"deliveryDays"`
	DeliveryDate    time.Time  `json:"deliveryDate"`
	Totals          Totals     `json:"totals"`
	LineItems       []LineItem `json:"lineItems"`
}

// Address is the shipping address snapshot of an order.
type Address struct {
	AddressID    string `json:"addressId"`
	AddressType  string `json:"addressType"`
	PhoneNumber  string `json:"phoneNumber"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// Totals is the monetary breakdown of an order.
type Totals struct {
	ProductsCost decimal.Decimal `json:"productsCost"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
}

// LineItem is one order line including its fulfillment track.
type LineItem struct {
	MerchantID   string          `json:"merchantId"`
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	Quantity     int             `json:"quantity"`
	Color        string          `json:"color"`
	Size         string          `json:"size"`
	Price        decimal.Decimal `json:"price"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Status       string          `json:"status"`
	UpdatedTime  time.Time       `json:"updatedTime"`
	Notes        string          `json:"notes,omitempty"`
}

// OrderSummary is one row of the order list endpoints.
type OrderSummary struct {
	ID             string          `json:"id"`
	TrackingNumber string          `json:"trackingNumber"`
	CustomerID     string          `json:"customerId"`
	Status         string          `json:"status"`
	PaymentMethod  string          `json:"paymentMethod"`
	Total          decimal.Decimal `json:"total"`
	OrderDateTime  time.Time       `json:"orderDateTime"`
	DeliveryDate   time.Time       `json:"deliveryDate"`
}

func orderFromReadModel(model queries.GetOrderQueryResponse) Order {
	lineItems := make([]LineItem, len(model.LineItems))
	for i, item := range model.LineItems {
		lineItems[i] = LineItem{
			MerchantID:   item.MerchantID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			Color:        item.Color,
			Size:         item.Size,
			Price:        item.Price,
			ShippingCost: item.ShippingCost,
			Subtotal:     item.Subtotal,
			Status:       item.Status,
			UpdatedTime:  item.UpdatedTime,
			Notes:        item.Notes,
		}
	}

	return Order{
		ID:             model.ID.String(),
		TrackingNumber: model.TrackingNumber,
		CustomerID:     model.CustomerID.String(),
		Status:         model.Status,
		PaymentMethod:  model.PaymentMethod,
		ShippingAddress: Address{
			AddressID:    model.ShippingAddress.AddressID,
			AddressType:  model.ShippingAddress.AddressType,
			PhoneNumber:  model.ShippingAddress.PhoneNumber,
			AddressLine1: model.ShippingAddress.AddressLine1,
			AddressLine2: model.ShippingAddress.AddressLine2,
			City:         model.ShippingAddress.City,
			State:        model.ShippingAddress.State,
			PostalCode:   model.ShippingAddress.PostalCode,
			Country:      model.ShippingAddress.Country,
		},
		OrderDateTime: model.OrderDateTime,
		DeliveryDays:  model.DeliveryDays,
		DeliveryDate:  model.DeliveryDate,
		Totals: Totals{
			ProductsCost: model.Totals.ProductsCost,
			Subtotal:     model.Totals.Subtotal,
			ShippingCost: model.Totals.ShippingCost,
			Tax:          model.Totals.Tax,
			Total:        model.Totals.Total,
		},
		LineItems: lineItems,
	}
}

func summariesFromReadModel(models []queries.OrderSummary) []OrderSummary {
	summaries := make([]OrderSummary, len(models))
	for i, model := range models {
		summaries[i] = OrderSummary{
			ID:             model.ID.String(),
			TrackingNumber: model.TrackingNumber,
			CustomerID:     model.CustomerID.String(),
			Status:         model.Status,
			PaymentMethod:  model.PaymentMethod,
			Total:          model.Total,
			OrderDateTime:  model.OrderDateTime,
			DeliveryDate:   model.DeliveryDate,
		}
	}
	return summaries
}

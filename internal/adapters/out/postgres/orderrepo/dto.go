// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// One row per order with the line items in a child table, indexed for the
// customer, status, and date listings plus the unique tracking number lookup.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TrackingNumber string          `gorm:"size:11;uniqueIndex"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;index"`
	PaymentMethod  int             `gorm:""`
	OrderDateTime  time.Time       `gorm:"index"`
	ProductsCost   decimal.Decimal `gorm:"type:decimal(14,4)"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(14,4)"`
	ShippingCost   decimal.Decimal `gorm:"type:decimal(14,4)"`
	Tax            decimal.Decimal `gorm:"type:decimal(14,4)"`
	Total          decimal.Decimal `gorm:"type:decimal(14,4)"`
	DeliveryDays   int
	DeliveryDate   time.Time
	Status         int        `gorm:"index"`
	Address        AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64

	Details []OrderDetailDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address snapshot within the order table.
type AddressDTO struct {
	ID          string
	Type        string
	PhoneNumber string
	Line1       string
	Line2       string
	City        string
	State       string
	PostalCode  string
	Country     string
}

// OrderDetailDTO represents one persisted order line item with its embedded
// fulfillment track.
type OrderDetailDTO struct {
	ID           uint            `gorm:"primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;index"`
	MerchantID   string          `gorm:"index"`
	ProductID    string          `gorm:""`
	ProductName  string          `gorm:""`
	Quantity     int             `gorm:""`
	Color        string          `gorm:""`
	Size         string          `gorm:""`
	Price        decimal.Decimal `gorm:"type:decimal(14,4)"`
	ShippingCost decimal.Decimal `gorm:"type:decimal(14,4)"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(14,4)"`
	Track        TrackDTO        `gorm:"embedded;embeddedPrefix:track_"`
}

// TableName specifies the database table name for order line items.
func (OrderDetailDTO) TableName() string {
	return "order_details"
}

// TrackDTO represents the embedded fulfillment track within the line item table.
type TrackDTO struct {
	Status      int
	UpdatedTime time.Time
	Notes       string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := make([]OrderDetailDTO, 0, len(aggregate.Details()))
	for _, detail := range aggregate.Details() {
		details = append(details, detailFromDomain(aggregate.ID().Bytes(), detail))
	}

	address := aggregate.ShippingAddress()
	totals := aggregate.Totals()

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber().String(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		PaymentMethod:  int(aggregate.PaymentMethod()),
		OrderDateTime:  aggregate.OrderDateTime(),
		ProductsCost:   totals.ProductsCost(),
		Subtotal:       totals.Subtotal(),
		ShippingCost:   totals.ShippingCost(),
		Tax:            totals.Tax(),
		Total:          totals.Total(),
		DeliveryDays:   aggregate.DeliveryDays(),
		DeliveryDate:   aggregate.DeliveryDate(),
		Status:         int(aggregate.Status()),
		Address: AddressDTO{
			ID:          address.AddressID,
			Type:        address.AddressType,
			PhoneNumber: address.PhoneNumber,
			Line1:       address.AddressLine1,
			Line2:       address.AddressLine2,
			City:        address.City,
			State:       address.State,
			PostalCode:  address.PostalCode,
			Country:     address.Country,
		},
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Version:   aggregate.Version(),
		Details:   details,
	}
}

// detailFromDomain converts one line item to its database representation.
// The row ID is left zero so the database assigns it on insert.
func detailFromDomain(orderID uuid.UUID, detail *order.Detail) OrderDetailDTO {
	track := detail.Track()

	return OrderDetailDTO{
		OrderID:      orderID,
		MerchantID:   detail.MerchantID(),
		ProductID:    detail.ProductID(),
		ProductName:  detail.ProductName(),
		Quantity:     detail.Quantity(),
		Color:        detail.Color(),
		Size:         detail.Size(),
		Price:        detail.Price(),
		ShippingCost: detail.ShippingCost(),
		Subtotal:     detail.Subtotal(),
		Track: TrackDTO{
			Status:      int(track.Status()),
			UpdatedTime: track.UpdatedTime(),
			Notes:       track.Notes(),
		},
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	totals, err := order.NewTotals(dto.ProductsCost, dto.Subtotal, dto.ShippingCost, dto.Tax, dto.Total)
	if err != nil {
		return nil, err
	}

	details := make([]*order.Detail, 0, len(dto.Details))
	for _, detailDTO := range dto.Details {
		details = append(details, detailToDomain(detailDTO))
	}

	return order.RestoreOrder(
		id,
		trackingNumber,
		customerID,
		order.PaymentMethod(dto.PaymentMethod),
		order.Address{
			AddressID:    dto.Address.ID,
			AddressType:  dto.Address.Type,
			PhoneNumber:  dto.Address.PhoneNumber,
			AddressLine1: dto.Address.Line1,
			AddressLine2: dto.Address.Line2,
			City:         dto.Address.City,
			State:        dto.Address.State,
			PostalCode:   dto.Address.PostalCode,
			Country:      dto.Address.Country,
		},
		dto.OrderDateTime,
		totals,
		dto.DeliveryDays,
		dto.DeliveryDate,
		order.Status(dto.Status),
		details,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}

// detailToDomain converts one persisted line item back to its domain entity.
func detailToDomain(dto OrderDetailDTO) *order.Detail {
	return order.RestoreDetail(
		dto.MerchantID,
		dto.ProductID,
		dto.ProductName,
		dto.Quantity,
		dto.Color,
		dto.Size,
		dto.Price,
		dto.ShippingCost,
		dto.Subtotal,
		order.RestoreTrack(order.Status(dto.Track.Status), dto.Track.UpdatedTime, dto.Track.Notes),
	)
}

// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by customer, status, and payment status.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    *uuid.UUID      `gorm:"type:uuid;index"`
	GuestName     string          `gorm:"type:varchar(255)"`
	GuestEmail    string          `gorm:"type:varchar(255);index"`
	GuestPhone    string          `gorm:"type:varchar(64)"`
	GuestAddress  string          `gorm:"type:varchar(512)"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status        int             `gorm:"type:int;not null;index"`
	PaymentStatus int             `gorm:"type:int;not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	Lines         []OrderLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents the database structure for persisting order line snapshots.
// Links to its order via foreign key; Position preserves the line sequence
// within the aggregate.
type OrderLineDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID      `gorm:"type:uuid;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageRef  string          `gorm:"type:varchar(512)"`
	Quantity  int             `gorm:"type:int;not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Position  int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the customer reference and every line snapshot, numbering lines by
// their position in the aggregate.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var customerID *uuid.UUID
	customer := aggregate.Customer()
	if customer.IsRegistered() {
		raw := customer.UserID().Bytes()
		customerID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		var productID *uuid.UUID
		if line.ProductID() != nil {
			raw := line.ProductID().Bytes()
			productID = &raw
		}

		lines = append(lines, OrderLineDTO{
			ID:        line.ID().Bytes(),
			OrderID:   orderID,
			ProductID: productID,
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().Decimal(),
			ImageRef:  line.ImageRef(),
			Quantity:  line.Quantity(),
			Subtotal:  line.Subtotal().Decimal(),
			Position:  i,
		})
	}

	return OrderDTO{
		ID:            orderID,
		CustomerID:    customerID,
		GuestName:     customer.GuestName(),
		GuestEmail:    customer.GuestEmail(),
		GuestPhone:    customer.GuestPhone(),
		GuestAddress:  customer.GuestAddress(),
		Total:         aggregate.Total().Decimal(),
		Status:        int(aggregate.Status()),
		PaymentStatus: int(aggregate.PaymentStatus()),
		CreatedAt:     aggregate.CreatedAt(),
		Lines:         lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including every line snapshot using RestoreOrder.
// Lines must already be loaded in position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := customerToDomain(dto)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.LineItem, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customer,
		lines,
		total,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		dto.CreatedAt,
	)
}

// customerToDomain rebuilds the customer reference from the order row.
// A non-null customer_id marks a registered customer; guest fields are
// authoritative otherwise.
func customerToDomain(dto OrderDTO) (order.CustomerRef, error) {
	if dto.CustomerID != nil {
		userID, err := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if err != nil {
			return order.CustomerRef{}, err
		}
		return order.NewRegisteredCustomer(userID)
	}

	return order.NewGuestCustomer(dto.GuestName, dto.GuestEmail, dto.GuestPhone, dto.GuestAddress)
}

// lineToDomain converts a line DTO to its domain entity.
// Uses RestoreLineItem so the persisted subtotal is kept as stored.
func lineToDomain(dto OrderLineDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var productID *kernel.UUID
	if dto.ProductID != nil {
		pID, productErr := kernel.UUIDFromBytes((*dto.ProductID)[:])
		if productErr != nil {
			return nil, productErr
		}
		productID = &pID
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(id, productID, dto.Name, unitPrice, dto.ImageRef, dto.Quantity, subtotal)
}

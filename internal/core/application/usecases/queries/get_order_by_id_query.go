// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return plain response
// structures, bypassing the aggregate layer.
package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order with all of its line items.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderByIDQueryHandler(db)
//	order, err := handler.Handle(ctx, query)
type GetOrderByIDQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for a single order.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderResponse represents a stored order with its snapshot data.
// Statuses are rendered as their string form for direct presentation.
type OrderResponse struct {
	ID            kernel.UUID
	CustomerID    *kernel.UUID
	GuestName     string
	GuestEmail    string
	GuestPhone    string
	GuestAddress  string
	Total         decimal.Decimal
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
	Lines         []OrderLineResponse
}

// OrderLineResponse represents a stored order line snapshot.
type OrderLineResponse struct {
	ID        kernel.UUID
	ProductID *kernel.UUID
	Name      string
	UnitPrice decimal.Decimal
	ImageRef  string
	Quantity  int
	Subtotal  decimal.Decimal
}

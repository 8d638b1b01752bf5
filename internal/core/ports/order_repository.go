// Package ports defines repository interfaces for the order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every write covers the full aggregate: the order row together with its
// line items is stored and removed as a single unit.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all line items in their stored sequence.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order aggregate.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByCustomerID retrieves all orders placed by a registered customer.
	GetByCustomerID(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByStatus retrieves all orders in the given fulfillment status.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetByPaymentStatus retrieves all orders in the given payment status.
	GetByPaymentStatus(ctx context.Context, status order.PaymentStatus) ([]*order.Order, error)

	// GetByCustomerEmail retrieves all guest orders placed with the given email.
	GetByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error)

	// Delete removes an order aggregate and all of its line items.
	Delete(ctx context.Context, id kernel.UUID) error
}

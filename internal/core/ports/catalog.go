package ports

import (
	"context"

	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"
)

// ProductLookup provides read access to the product catalog.
// Used while creating orders to snapshot product data into line items.
type ProductLookup interface {
	// GetByID retrieves a catalog product by its unique identifier.
	GetByID(ctx context.Context, id kernel.UUID) (catalog.Product, error)
}

// UserLookup provides read access to registered customer accounts.
type UserLookup interface {
	// GetByID retrieves a registered user by its unique identifier.
	GetByID(ctx context.Context, id kernel.UUID) (catalog.User, error)

	// ExistsByEmail reports whether a registered account owns the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

package catalog

import "shop/internal/core/domain/model/kernel"

// User is a registered customer account referenced by orders.
type User struct {
	ID    kernel.UUID
	Name  string
	Email string
}

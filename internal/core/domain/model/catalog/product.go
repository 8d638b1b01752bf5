package catalog

import "shop/internal/core/domain/model/kernel"

// Product is a catalog entry used to fill order line snapshots.
type Product struct {
	ID       kernel.UUID
	Name     string
	Price    kernel.Money
	ImageRef string
}

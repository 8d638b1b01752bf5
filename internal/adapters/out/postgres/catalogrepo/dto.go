// Package catalogrepo provides GORM-backed read access to the product and
// user catalogs. Catalog rows are plain reference data, so this package
// maps them to value structs rather than aggregates.
package catalogrepo

import (
	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:varchar(1024)"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageRef    string          `gorm:"type:varchar(512)"`
	Stock       int             `gorm:"not null;default:0"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// UserDTO represents the database structure for registered customer accounts.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Email string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role  string    `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// productToDomain converts a product row to its catalog value.
func productToDomain(dto ProductDTO) (catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Product{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return catalog.Product{}, err
	}

	return catalog.Product{
		ID:       id,
		Name:     dto.Name,
		Price:    price,
		ImageRef: dto.ImageRef,
	}, nil
}

// userToDomain converts a user row to its catalog value.
func userToDomain(dto UserDTO) (catalog.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.User{}, err
	}

	return catalog.User{
		ID:    id,
		Name:  dto.Name,
		Email: dto.Email,
	}, nil
}

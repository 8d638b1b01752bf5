package catalogrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductLookup implements ProductLookup using GORM.
type GormProductLookup struct {
	db *gorm.DB
}

// NewGormProductLookup creates a new GORM product lookup.
func NewGormProductLookup(db *gorm.DB) *GormProductLookup {
	return &GormProductLookup{db: db}
}

// GetByID retrieves a catalog product by ID.
func (r *GormProductLookup) GetByID(ctx context.Context, id kernel.UUID) (catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return catalog.Product{}, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Product{}, errs.NewObjectNotFoundError("product", id.String())
		}
		return catalog.Product{}, err
	}

	return productToDomain(dto)
}

// GormUserLookup implements UserLookup using GORM.
type GormUserLookup struct {
	db *gorm.DB
}

// NewGormUserLookup creates a new GORM user lookup.
func NewGormUserLookup(db *gorm.DB) *GormUserLookup {
	return &GormUserLookup{db: db}
}

// GetByID retrieves a registered user by ID.
func (r *GormUserLookup) GetByID(ctx context.Context, id kernel.UUID) (catalog.User, error) {
	if err := id.Validate(); err != nil {
		return catalog.User{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return catalog.User{}, err
	}

	return userToDomain(dto)
}

// ExistsByEmail reports whether a registered account owns the given email.
func (r *GormUserLookup) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, errs.NewValueIsRequiredError("email")
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

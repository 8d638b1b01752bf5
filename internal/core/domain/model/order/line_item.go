package order

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

const minLineQuantity = 1

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one priced product-and-quantity entry within an order. It is
// owned exclusively by its parent Order and cannot exist without one.
//
// The name, unit price, and image reference are snapshots captured when the
// order is created. They are never re-read from the catalog afterward, so a
// persisted order stays a truthful historical record even if the product is
// later edited or deleted. The optional product reference only records where
// the snapshot came from.
type LineItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// productID references the catalog product the snapshot was taken from
	// (nil for fully inline lines)
	productID *kernel.UUID

	// name is the product name snapshot
	name string

	// unitPrice is the per-unit price snapshot
	unitPrice kernel.Money

	// imageRef is the product image reference snapshot
	imageRef string

	// quantity is the ordered unit count, always >= 1
	quantity int

	// subtotal is quantity * unitPrice, derived at construction
	subtotal kernel.Money

	// isConstructed ensures the line item was created via a constructor
	isConstructed bool
}

// NewLineItem creates a line item, deriving its subtotal from the quantity and
// unit-price snapshot. All snapshot values must already be resolved: the
// caller (the order creation flow) merges caller-supplied values with catalog
// values before constructing the line.
//
// Validation rules:
//   - id must be a valid UUID
//   - name must not be empty (an unnamed line cannot be displayed)
//   - unitPrice must be a constructed Money
//   - quantity must be at least 1
func NewLineItem(
	id kernel.UUID,
	productID *kernel.UUID,
	name string,
	unitPrice kernel.Money,
	imageRef string,
	quantity int,
) (*LineItem, error) {
	item := &LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}
	item.imageRef = imageRef

	subtotal, err := unitPrice.MulInt(quantity)
	if err != nil {
		return nil, err
	}
	item.subtotal = subtotal

	return item, nil
}

// RestoreLineItem rebuilds a line item from persisted state. The stored
// subtotal is kept as-is rather than rederived: what was committed at
// creation time is the historical record.
func RestoreLineItem(
	id kernel.UUID,
	productID *kernel.UUID,
	name string,
	unitPrice kernel.Money,
	imageRef string,
	quantity int,
	subtotal kernel.Money,
) (*LineItem, error) {
	item := &LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}
	item.imageRef = imageRef

	if err := subtotal.Validate(); err != nil {
		return nil, err
	}
	item.subtotal = subtotal

	return item, nil
}

// Validate ensures the LineItem was created through a constructor.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// ProductID returns the referenced catalog product id, or nil for inline lines.
func (li *LineItem) ProductID() *kernel.UUID {
	return li.productID
}

// Name returns the product name snapshot.
func (li *LineItem) Name() string {
	return li.name
}

// UnitPrice returns the per-unit price snapshot.
func (li *LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// ImageRef returns the product image reference snapshot.
func (li *LineItem) ImageRef() string {
	return li.imageRef
}

// Quantity returns the ordered unit count.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns quantity * unit price as derived at creation time.
func (li *LineItem) Subtotal() kernel.Money {
	return li.subtotal
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setProductID(productID *kernel.UUID) error {
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return err
		}
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line item name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	li.unitPrice = unitPrice
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < minLineQuantity {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than or equal to %d", quantity, minLineQuantity))
	}
	li.quantity = quantity
	return nil
}

package commands

import (
	"context"
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves line snapshots against the product catalog, verifies customer
// references, and persists the complete aggregate in one transaction.
//
// Caller-supplied line values always win; catalog data only fills the
// fields the caller left out.
type CreateOrderCommandHandler struct {
	uowFactory       OrderUoWFactory
	products         ports.ProductLookup
	users            ports.UserLookup
	allowEmptyOrders bool
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// allowEmptyOrders lifts the at-least-one-line rule for new orders.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	products ports.ProductLookup,
	users ports.UserLookup,
	allowEmptyOrders bool,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:       uowFactory,
		products:         products,
		users:            users,
		allowEmptyOrders: allowEmptyOrders,
	}
}

// Handle processes the order creation command.
// Returns the created aggregate with its computed total and final statuses.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if len(cmd.Lines()) == 0 && !h.allowEmptyOrders {
		return nil, errs.NewValueIsRequiredError("lines")
	}

	if err := h.verifyCustomer(ctx, cmd.Customer()); err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, err := h.resolveLine(ctx, line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), items, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if cmd.Status() != nil {
		if err = aggregate.ChangeStatus(*cmd.Status()); err != nil {
			return nil, err
		}
	}

	if cmd.PaymentStatus() != nil {
		if err = aggregate.ChangePaymentStatus(*cmd.PaymentStatus()); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// verifyCustomer ensures registered customers reference an existing account.
// Guest customers carry all their data inline and need no lookup.
func (h *CreateOrderCommandHandler) verifyCustomer(ctx context.Context, customer order.CustomerRef) error {
	if !customer.IsRegistered() {
		return nil
	}

	userID := *customer.UserID()
	if _, err := h.users.GetByID(ctx, userID); err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return errs.NewReferenceNotFoundError("user", userID.String())
		}
		return err
	}

	return nil
}

// resolveLine turns a requested line into a snapshotted line item.
// A referenced product must exist even when the caller supplied every
// snapshot field; caller-supplied values still win over catalog data.
func (h *CreateOrderCommandHandler) resolveLine(ctx context.Context, line OrderLine) (*order.LineItem, error) {
	name := line.Name()
	unitPrice := line.UnitPrice()
	imageRef := line.ImageRef()

	productID := line.ProductID()
	if productID != nil {
		product, err := h.products.GetByID(ctx, *productID)
		if err != nil {
			var notFound *errs.ObjectNotFoundError
			if errors.As(err, &notFound) {
				return nil, errs.NewReferenceNotFoundError("product", productID.String())
			}
			return nil, err
		}

		if name == "" {
			name = product.Name
		}
		if unitPrice == nil {
			price := product.Price
			unitPrice = &price
		}
		if imageRef == "" {
			imageRef = product.ImageRef
		}
	}

	if unitPrice == nil {
		return nil, errs.NewValueIsRequiredError("unitPrice")
	}

	return order.NewLineItem(kernel.NewUUID(), productID, name, *unitPrice, imageRef, line.Quantity())
}

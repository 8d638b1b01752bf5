package order

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer order. It owns its line items
// exclusively, derives its total from their subtotals, and tracks two
// independent lifecycle dimensions: fulfillment Status and PaymentStatus.
//
// Order follows these invariants:
//   - must have a valid unique identifier and a constructed CustomerRef
//   - total always equals the sum of the line subtotals; it is computed here
//     and never accepted from outside
//   - line snapshots are immutable after creation
//   - status changes validate membership in the enumerated sets only
//   - can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer identifies the registered user or guest the order belongs to
	customer CustomerRef

	// lines are the order's line items, in submission sequence
	lines []*LineItem

	// total is the sum of all line subtotals, derived at construction
	total kernel.Money

	// status is the fulfillment state
	status Status

	// paymentStatus is the payment state
	paymentStatus PaymentStatus

	// createdAt is set once at creation and immutable thereafter
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with default pending statuses and a total
// computed from the line subtotals. Lines must already be fully priced; any
// number of lines is accepted here - whether an empty order is allowed is a
// policy decision made by the creation use case, not by the aggregate, so
// that rehydrating historical rows never fails.
func NewOrder(
	id kernel.UUID,
	customer CustomerRef,
	lines []*LineItem,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setLines(lines),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	total, err := sumSubtotals(lines)
	if err != nil {
		return nil, err
	}
	order.total = total

	return order, nil
}

// RestoreOrder rebuilds a persisted Order. The stored total and statuses are
// taken as-is; statuses are still membership-validated so corrupt rows are
// caught when they surface.
func RestoreOrder(
	id kernel.UUID,
	customer CustomerRef,
	lines []*LineItem,
	total kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setLines(lines),
		order.setCreatedAt(createdAt),
		order.ChangeStatus(status),
		order.ChangePaymentStatus(paymentStatus),
	); err != nil {
		return nil, err
	}

	if err := total.Validate(); err != nil {
		return nil, err
	}
	order.total = total

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer reference the order belongs to.
func (o *Order) Customer() CustomerRef {
	return o.customer
}

// Lines returns the order's line items in submission sequence.
func (o *Order) Lines() []*LineItem {
	return o.lines
}

// Total returns the sum of all line subtotals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus sets the fulfillment status. The new status only has to be a
// member of the enumerated set; any status is reachable from any other.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// ChangePaymentStatus sets the payment status, validating set membership only.
func (o *Order) ChangePaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer CustomerRef) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setLines(lines []*LineItem) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// sumSubtotals adds up the line subtotals with decimal-exact arithmetic.
func sumSubtotals(lines []*LineItem) (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, line := range lines {
		sum, err := total.Add(line.Subtotal())
		if err != nil {
			return kernel.Money{}, err
		}
		total = sum
	}
	return total, nil
}

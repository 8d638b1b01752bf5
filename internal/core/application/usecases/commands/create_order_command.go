package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLineIsNotConstructed = errors.New(
		"OrderLine must be created via NewOrderLine constructor",
	)
	ErrOrderLineHasNoSource = errors.New(
		"order line needs a product reference or an explicit name and unit price",
	)
)

// OrderLine is a single requested line in a create order command.
// Caller-supplied name, price, and image take precedence over catalog
// data; the product reference fills whatever the caller left out.
type OrderLine struct { //nolint:recvcheck //using for validation
	productID *kernel.UUID
	name      string
	unitPrice *kernel.Money
	imageRef  string
	quantity  int

	guard guard.ConstructorGuard
}

// NewOrderLine creates a requested order line.
// A line must carry either a product reference or a full inline snapshot
// (name and unit price), and a quantity of at least one.
func NewOrderLine(
	productID *kernel.UUID,
	name string,
	unitPrice *kernel.Money,
	imageRef string,
	quantity int,
) (OrderLine, error) {
	line := OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	line.name = name
	line.imageRef = imageRef

	if line.productID == nil && (line.name == "" || line.unitPrice == nil) {
		return OrderLine{}, ErrOrderLineHasNoSource
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// ProductID returns the referenced catalog product, or nil for inline lines.
func (l OrderLine) ProductID() *kernel.UUID {
	return l.productID
}

// Name returns the caller-supplied product name, empty when not provided.
func (l OrderLine) Name() string {
	return l.name
}

// UnitPrice returns the caller-supplied unit price, nil when not provided.
func (l OrderLine) UnitPrice() *kernel.Money {
	return l.unitPrice
}

// ImageRef returns the caller-supplied image reference, empty when not provided.
func (l OrderLine) ImageRef() string {
	return l.imageRef
}

// Quantity returns how many units were requested.
func (l OrderLine) Quantity() int {
	return l.quantity
}

func (l *OrderLine) setProductID(productID *kernel.UUID) error {
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return err
		}
	}

	l.productID = productID
	return nil
}

func (l *OrderLine) setUnitPrice(unitPrice *kernel.Money) error {
	if unitPrice != nil {
		if err := unitPrice.Validate(); err != nil {
			return err
		}
	}

	l.unitPrice = unitPrice
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}

	l.quantity = quantity
	return nil
}

// CreateOrderCommand represents a request to place a new order.
// Carries the customer, the requested lines, and optional initial
// statuses that override the pending defaults.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	customer, _ := order.NewGuestCustomer("Ada", "ada@example.com", "", "1 Main St")
//	line, _ := commands.NewOrderLine(&productID, "", nil, "", 2)
//	cmd, err := commands.NewCreateOrderCommand(orderID, customer, []commands.OrderLine{line}, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customer      order.CustomerRef
	lines         []OrderLine
	status        *order.Status
	paymentStatus *order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the order ID, the customer reference, every line, and the
// optional status overrides. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.CustomerRef,
	lines []OrderLine,
	status *order.Status,
	paymentStatus *order.PaymentStatus,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomer(customer),
		orderCommand.setLines(lines),
		orderCommand.setStatus(status),
		orderCommand.setPaymentStatus(paymentStatus),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the ordering customer reference.
func (c CreateOrderCommand) Customer() order.CustomerRef {
	return c.customer
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

// Status returns the requested initial order status, nil for the default.
func (c CreateOrderCommand) Status() *order.Status {
	return c.status
}

// PaymentStatus returns the requested initial payment status, nil for the default.
func (c CreateOrderCommand) PaymentStatus() *order.PaymentStatus {
	return c.paymentStatus
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.CustomerRef) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}

func (c *CreateOrderCommand) setPaymentStatus(paymentStatus *order.PaymentStatus) error {
	if paymentStatus != nil {
		if err := paymentStatus.Validate(); err != nil {
			return err
		}
	}

	c.paymentStatus = paymentStatus
	return nil
}

package queries

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via one of the NewGetOrders... constructors",
)

// ordersFilter selects which predicate a GetOrdersQuery applies.
type ordersFilter int

const (
	filterAll ordersFilter = iota
	filterCustomerID
	filterStatus
	filterPaymentStatus
	filterCustomerEmail
)

// GetOrdersQuery retrieves order listings with an optional predicate.
// Construct it through one of the filter constructors; each constructor
// fixes the predicate the handler will apply.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Pending)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	filter        ordersFilter
	customerID    kernel.UUID
	status        order.Status
	paymentStatus order.PaymentStatus
	customerEmail string

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query that lists every order.
func NewGetAllOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{
		filter: filterAll,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewGetOrdersByCustomerQuery creates a query that lists the orders
// placed by a registered customer.
func NewGetOrdersByCustomerQuery(customerID kernel.UUID) (GetOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		filter:     filterCustomerID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewGetOrdersByStatusQuery creates a query that lists the orders in the
// given fulfillment status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		filter: filterStatus,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetOrdersByPaymentStatusQuery creates a query that lists the orders
// in the given payment status.
func NewGetOrdersByPaymentStatusQuery(paymentStatus order.PaymentStatus) (GetOrdersQuery, error) {
	if err := paymentStatus.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		filter:        filterPaymentStatus,
		paymentStatus: paymentStatus,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// NewGetOrdersByCustomerEmailQuery creates a query that lists the guest
// orders placed with the given email.
func NewGetOrdersByCustomerEmailQuery(email string) (GetOrdersQuery, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return GetOrdersQuery{}, errs.NewValueIsRequiredError("email")
	}

	return GetOrdersQuery{
		filter:        filterCustomerEmail,
		customerEmail: email,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

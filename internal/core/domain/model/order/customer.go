package order

import (
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrCustomerRefIsNotConstructed is returned when a CustomerRef was not created
// through NewRegisteredCustomer or NewGuestCustomer.
var ErrCustomerRefIsNotConstructed = errs.NewValueIsRequiredError(
	"customer must be created via NewRegisteredCustomer or NewGuestCustomer constructors")

// CustomerRef identifies the customer an order belongs to. It is a tagged
// variant: either a reference to a registered user, or inline guest contact
// details. Exactly one form is populated; the two never mix.
//
// Example:
//
//	registered, err := order.NewRegisteredCustomer(userID)
//	guest, err := order.NewGuestCustomer("Ada", "ada@example.com", "+34 600 000 000", "Calle Mayor 1")
type CustomerRef struct { //nolint:recvcheck //using for validation
	userID *kernel.UUID

	guestName    string
	guestEmail   string
	guestPhone   string
	guestAddress string

	guard guard.ConstructorGuard
}

// NewRegisteredCustomer creates a CustomerRef pointing at a registered user.
// The user id must be a valid UUID; whether the user actually exists is
// checked by the order creation flow against the user lookup.
func NewRegisteredCustomer(userID kernel.UUID) (CustomerRef, error) {
	if err := userID.Validate(); err != nil {
		return CustomerRef{}, err
	}

	return CustomerRef{
		userID: &userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGuestCustomer creates a CustomerRef carrying inline guest contact fields.
// The email is the one required field; it is what makes a guest order
// addressable afterward. Name, phone, and shipping address are optional.
func NewGuestCustomer(name, email, phone, shippingAddress string) (CustomerRef, error) {
	if strings.TrimSpace(email) == "" {
		return CustomerRef{}, errs.NewValueIsRequiredError("guest email")
	}

	return CustomerRef{
		guestName:    name,
		guestEmail:   email,
		guestPhone:   phone,
		guestAddress: shippingAddress,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// IsRegistered reports whether the customer is a registered user reference.
func (c CustomerRef) IsRegistered() bool {
	return c.userID != nil
}

// UserID returns the registered user's id, or nil for guest customers.
func (c CustomerRef) UserID() *kernel.UUID {
	return c.userID
}

// GuestName returns the guest's name. Empty for registered customers.
func (c CustomerRef) GuestName() string {
	return c.guestName
}

// GuestEmail returns the guest's email. Empty for registered customers.
func (c CustomerRef) GuestEmail() string {
	return c.guestEmail
}

// GuestPhone returns the guest's phone number. Empty for registered customers.
func (c CustomerRef) GuestPhone() string {
	return c.guestPhone
}

// GuestAddress returns the guest's shipping address. Empty for registered customers.
func (c CustomerRef) GuestAddress() string {
	return c.guestAddress
}

// Validate ensures the CustomerRef was created through a constructor.
func (c CustomerRef) Validate() error {
	return c.guard.Validate(ErrCustomerRefIsNotConstructed)
}

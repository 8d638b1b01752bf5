package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// There is deliberately no transition table: any status may follow any other.
// The enumerated set itself is the only rule, so a status change validates
// membership and nothing else.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status assigned to every newly created order.
	Pending

	// Confirmed indicates the order has been accepted for fulfillment.
	Confirmed

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	Delivered

	// Cancelled indicates the order was called off.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations, including the invalid zero value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Confirmed:     "confirmed",
		Shipped:       "shipped",
		Delivered:     "delivered",
		Cancelled:     "cancelled",
	}
}

// getValidStatusStrings returns only the members of the enumerated set.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the lowercase wire representation of a status.
// Returns an error for any value outside the enumerated set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks membership in the enumerated status set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for
// out-of-set values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

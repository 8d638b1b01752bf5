package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order, tracked
// independently of the fulfillment Status. Like Status it carries no
// transition rules beyond membership in the enumerated set.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status of every new order.
	PaymentPending

	// Paid indicates payment completed.
	Paid

	// Failed indicates a payment attempt failed.
	Failed

	// Refunded indicates the payment was returned to the customer.
	Refunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "unknown",
		PaymentPending: "pending",
		Paid:           "paid",
		Failed:         "failed",
		Refunded:       "refunded",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending: "pending",
		Paid:           "paid",
		Failed:         "failed",
		Refunded:       "refunded",
	}
}

// PaymentStatusFromString parses the lowercase wire representation of a
// payment status. Returns an error for any value outside the enumerated set.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks membership in the enumerated payment-status set.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the lowercase name of the payment status, or "unknown" for
// out-of-set values. Implements fmt.Stringer.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

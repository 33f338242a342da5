package order

import (
	"fmt"

	"fosso/internal/pkg/errs"
)

// PaymentMethod identifies how the customer pays for an order.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCard is payment by card at checkout.
	PaymentMethodCard

	// PaymentMethodCashOnDelivery is payment in cash when the order arrives.
	PaymentMethodCashOnDelivery
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodCard:           "CARD",
		PaymentMethodCashOnDelivery: "CASH_ON_DELIVERY",
	}
}

// PaymentMethodFromString parses a payment method from its persisted or API representation.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the persisted name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

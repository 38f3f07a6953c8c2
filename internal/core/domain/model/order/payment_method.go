package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// PaymentMethod represents how an order will be paid.
// It is a value object with a fixed set of supported methods.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// BankTransfer is payment by bank transfer before delivery.
	BankTransfer

	// CashOnDelivery is payment in cash when the order arrives.
	CashOnDelivery
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		BankTransfer:   "bank",
		CashOnDelivery: "cash",
	}
}

func getPaymentMethodDisplayNames() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		BankTransfer:   "Bank Transfer",
		CashOnDelivery: "Cash on Delivery",
	}
}

// PaymentMethodFromString parses a wire-format payment method code
// ("bank" or "cash"). Returns an error for unknown codes.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method",
		fmt.Errorf("%q is not a supported payment method", s),
	)
}

// Validate checks if the PaymentMethod is one of the supported methods.
func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method",
			fmt.Errorf("%d is not a supported payment method", p),
		)
	}
	return nil
}

// String returns the wire code of the payment method ("bank" or "cash").
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Display returns the human-readable label of the payment method.
func (p PaymentMethod) Display() string {
	if str, ok := getPaymentMethodDisplayNames()[p]; ok {
		return str
	}
	return "Unknown"
}

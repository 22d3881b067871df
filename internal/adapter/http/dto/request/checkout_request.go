package request

import (
	"strings"

	"booze/internal/domain/entities"
)

type CheckoutRequest struct {
	PaymentMode string `json:"payment_mode"`
}

// ResolvePaymentMode returns an empty mode when none was chosen, leaving the
// "not selected" decision to checkout. Unknown values are rejected here.
func (r CheckoutRequest) ResolvePaymentMode() (entities.PaymentMode, error) {
	if strings.TrimSpace(r.PaymentMode) == "" {
		return "", nil
	}
	return entities.ParsePaymentMode(r.PaymentMode)
}

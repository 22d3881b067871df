package entities

import (
	"errors"
	"strings"
)

var ErrUnknownPaymentMode = errors.New("unknown payment mode")

// PaymentMode is the settlement method chosen for an order.
type PaymentMode string

const (
	PaymentModePix     PaymentMode = "pix"
	PaymentModeCredito PaymentMode = "credito"
	PaymentModeDebito  PaymentMode = "debito"
)

func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModePix, PaymentModeCredito, PaymentModeDebito:
		return true
	}
	return false
}

// ParsePaymentMode normalizes form input ("PIX", " debito ") into a PaymentMode.
func ParsePaymentMode(raw string) (PaymentMode, error) {
	m := PaymentMode(strings.ToLower(strings.TrimSpace(raw)))
	if !m.IsValid() {
		return "", ErrUnknownPaymentMode
	}
	return m, nil
}

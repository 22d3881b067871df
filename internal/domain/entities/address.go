package entities

import (
	"errors"
	"strings"
)

var ErrInvalidAddress = errors.New("invalid address")

// Address is the delivery address confirmed by the shopper at checkout.
//
// The checkout core treats it as an opaque value; only Validate looks inside.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

func (a Address) Validate() error {
	for _, v := range []string{a.Street, a.Number, a.City, a.State, a.ZipCode} {
		if strings.TrimSpace(v) == "" {
			return ErrInvalidAddress
		}
	}
	return nil
}

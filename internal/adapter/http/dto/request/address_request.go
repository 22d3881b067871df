package request

import (
	"strings"

	"booze/internal/domain/entities"
)

// AddressRequest is the delivery form submitted before checkout.
type AddressRequest struct {
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zip_code" binding:"required"`
}

func (r AddressRequest) ToEntity() entities.Address {
	return entities.Address{
		Street:       strings.TrimSpace(r.Street),
		Number:       strings.TrimSpace(r.Number),
		Complement:   strings.TrimSpace(r.Complement),
		Neighborhood: strings.TrimSpace(r.Neighborhood),
		City:         strings.TrimSpace(r.City),
		State:        strings.ToUpper(strings.TrimSpace(r.State)),
		ZipCode:      strings.TrimSpace(r.ZipCode),
	}
}

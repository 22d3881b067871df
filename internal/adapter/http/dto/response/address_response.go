package response

import "booze/internal/domain/entities"

type AddressResponse struct {
	Confirmed bool              `json:"confirmed"`
	Address   *entities.Address `json:"address,omitempty"`
}

func FromAddress(addr entities.Address, confirmed bool) AddressResponse {
	if !confirmed {
		return AddressResponse{}
	}
	return AddressResponse{Confirmed: true, Address: &addr}
}

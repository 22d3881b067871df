package store

import "booze/internal/domain/entities"

// AddressStore holds at most one confirmed delivery address.
// Confirming a new address replaces the previous one.
type AddressStore struct {
	address *entities.Address
}

func NewAddressStore() *AddressStore {
	return &AddressStore{}
}

func (s *AddressStore) Confirm(a entities.Address) {
	s.address = &a
}

func (s *AddressStore) Clear() {
	s.address = nil
}

func (s *AddressStore) IsConfirmed() bool {
	return s.address != nil
}

func (s *AddressStore) Address() (entities.Address, bool) {
	if s.address == nil {
		return entities.Address{}, false
	}
	return *s.address, true
}

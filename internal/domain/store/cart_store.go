package store

import (
	"errors"
	"strings"

	"booze/internal/domain/entities"
)

var (
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidUnitPrice = errors.New("invalid unit price")
)

type CartEventKind string

const (
	CartItemAdded       CartEventKind = "item_added"
	CartItemDecremented CartEventKind = "item_decremented"
	CartItemRemoved     CartEventKind = "item_removed"
	CartCleared         CartEventKind = "cleared"
)

// CartEvent is delivered to observers after every cart mutation.
// Quantity is the product's quantity after the mutation (0 when removed).
type CartEvent struct {
	Kind      CartEventKind
	ProductID string
	Quantity  int
}

// CartStore owns the line items of one shopper's active cart.
//
// It is not safe for concurrent use; a session owns exactly one store and
// serializes access to it.
type CartStore struct {
	items     []entities.LineItem
	observers []func(CartEvent)
}

func NewCartStore(items ...entities.LineItem) *CartStore {
	s := &CartStore{}
	for _, it := range items {
		if it.ProductID == "" || it.Quantity <= 0 || it.UnitPriceCents < 0 {
			continue
		}
		if i := s.indexOf(it.ProductID); i >= 0 {
			s.items[i].Quantity += it.Quantity
			continue
		}
		s.items = append(s.items, it)
	}
	return s
}

// Subscribe registers fn to be called synchronously after each mutation.
func (s *CartStore) Subscribe(fn func(CartEvent)) {
	s.observers = append(s.observers, fn)
}

// AddOrIncrement adds one unit of productID. The unit price of an existing
// line is kept; unitPriceCents only applies to a new line.
func (s *CartStore) AddOrIncrement(productID string, unitPriceCents int64) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ErrInvalidProductID
	}
	if unitPriceCents < 0 {
		return ErrInvalidUnitPrice
	}

	qty := 1
	if i := s.indexOf(productID); i >= 0 {
		s.items[i].Quantity++
		qty = s.items[i].Quantity
	} else {
		s.items = append(s.items, entities.LineItem{ProductID: productID, Quantity: 1, UnitPriceCents: unitPriceCents})
	}
	s.notify(CartEvent{Kind: CartItemAdded, ProductID: productID, Quantity: qty})
	return nil
}

// DecrementOrRemove takes one unit of productID away, dropping the line when it reaches zero.
// Unknown products are ignored.
func (s *CartStore) DecrementOrRemove(productID string) {
	productID = strings.TrimSpace(productID)
	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	if s.items[i].Quantity <= 1 {
		s.removeAt(i)
		s.notify(CartEvent{Kind: CartItemRemoved, ProductID: productID})
		return
	}
	s.items[i].Quantity--
	s.notify(CartEvent{Kind: CartItemDecremented, ProductID: productID, Quantity: s.items[i].Quantity})
}

// RemoveAll drops the line for productID regardless of its quantity.
func (s *CartStore) RemoveAll(productID string) {
	productID = strings.TrimSpace(productID)
	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	s.removeAt(i)
	s.notify(CartEvent{Kind: CartItemRemoved, ProductID: productID})
}

func (s *CartStore) Clear() {
	s.items = nil
	s.notify(CartEvent{Kind: CartCleared})
}

func (s *CartStore) IsEmpty() bool {
	return len(s.items) == 0
}

// Items returns a copy of the line items in insertion order.
func (s *CartStore) Items() []entities.LineItem {
	out := make([]entities.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Quantity returns the quantity held for productID, 0 when absent.
func (s *CartStore) Quantity(productID string) int {
	if i := s.indexOf(productID); i >= 0 {
		return s.items[i].Quantity
	}
	return 0
}

func (s *CartStore) TotalQuantity() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

func (s *CartStore) Subtotal() int64 {
	var total int64
	for _, it := range s.items {
		total += it.Subtotal()
	}
	return total
}

// TotalWithTax adds the delivery tax whenever the cart holds a line, even one
// priced at zero.
func (s *CartStore) TotalWithTax() int64 {
	if s.IsEmpty() {
		return 0
	}
	return s.Subtotal() + entities.DeliveryTaxCents
}

func (s *CartStore) indexOf(productID string) int {
	for i, it := range s.items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *CartStore) removeAt(i int) {
	s.items = append(s.items[:i], s.items[i+1:]...)
}

func (s *CartStore) notify(ev CartEvent) {
	for _, fn := range s.observers {
		fn(ev)
	}
}

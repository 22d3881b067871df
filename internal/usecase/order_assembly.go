package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"booze/internal/domain/entities"
	"booze/internal/domain/store"
	"booze/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart              = errors.New("cart is empty")
	ErrAddressNotConfirmed    = errors.New("delivery address not confirmed")
	ErrPaymentModeNotSelected = errors.New("payment mode not selected")
	ErrInvalidPaymentMode     = errors.New("invalid payment mode")
	ErrSubmitInProgress       = errors.New("order submission already in progress")
)

// ValidationError reports the unmet checkout precondition. It unwraps to one of
// ErrEmptyCart, ErrAddressNotConfirmed, ErrPaymentModeNotSelected or ErrInvalidPaymentMode.
type ValidationError struct {
	Precondition error
}

func (e *ValidationError) Error() string {
	return "checkout validation failed: " + e.Precondition.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Precondition
}

// PersistenceFailure wraps the order repository error. Nothing was mutated, so
// the same submission can be retried.
type PersistenceFailure struct {
	OrderID string
	Err     error
}

func (e *PersistenceFailure) Error() string {
	return fmt.Sprintf("persist order %s: %v", e.OrderID, e.Err)
}

func (e *PersistenceFailure) Unwrap() error {
	return e.Err
}

// OrderAssembly turns the contents of a cart and a confirmed address into an
// Order and hands it to the order repository.
//
// Rules:
//   - the cart is cleared only after the repository accepted the order
//   - the confirmed address is kept for the next order
//   - a Submit issued while another one is still running is rejected

type OrderAssembly struct {
	cart       *store.CartStore
	address    *store.AddressStore
	repo       interfaces.IOrderRepository
	customerID string
	now        func() time.Time
	submitting atomic.Bool
}

func NewOrderAssembly(cart *store.CartStore, address *store.AddressStore, repo interfaces.IOrderRepository, customerID string) *OrderAssembly {
	return &OrderAssembly{
		cart:       cart,
		address:    address,
		repo:       repo,
		customerID: customerID,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (a *OrderAssembly) Submit(ctx context.Context, mode entities.PaymentMode) (entities.Order, error) {
	return a.SubmitWithID(ctx, "", mode)
}

// SubmitWithID is Submit with a caller-chosen order ID, so a retried request
// reaches the repository with the same ID. An empty orderID gets a fresh one.
func (a *OrderAssembly) SubmitWithID(ctx context.Context, orderID string, mode entities.PaymentMode) (entities.Order, error) {
	if !a.submitting.CompareAndSwap(false, true) {
		log.Printf("[checkout][assembly] submit rejected: already in progress customer_id=%s", a.customerID)
		return entities.Order{}, ErrSubmitInProgress
	}
	defer a.submitting.Store(false)

	addr, err := a.validate(mode)
	if err != nil {
		return entities.Order{}, err
	}
	if a.repo == nil {
		return entities.Order{}, errors.New("order repository not configured")
	}

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		orderID = uuid.NewString()
	}
	order := entities.Order{
		ID:               orderID,
		CustomerID:       a.customerID,
		Address:          addr,
		PaymentMode:      mode,
		LineItems:        a.cart.Items(),
		TotalAmountCents: a.cart.TotalWithTax(),
		CreatedAt:        a.now(),
	}

	log.Printf("[checkout][assembly] persisting order order_id=%s items=%d total_cents=%d payment_mode=%s", order.ID, len(order.LineItems), order.TotalAmountCents, order.PaymentMode)
	if err := a.repo.Persist(ctx, order); err != nil {
		log.Printf("[checkout][assembly] persist failed order_id=%s err=%v", order.ID, err)
		return entities.Order{}, &PersistenceFailure{OrderID: order.ID, Err: err}
	}

	a.cart.Clear()
	log.Printf("[checkout][assembly] order submitted order_id=%s", order.ID)
	return order, nil
}

func (a *OrderAssembly) validate(mode entities.PaymentMode) (entities.Address, error) {
	if a.cart == nil || a.cart.IsEmpty() {
		return entities.Address{}, &ValidationError{Precondition: ErrEmptyCart}
	}
	addr, ok := entities.Address{}, false
	if a.address != nil {
		addr, ok = a.address.Address()
	}
	if !ok {
		return entities.Address{}, &ValidationError{Precondition: ErrAddressNotConfirmed}
	}
	if mode == "" {
		return entities.Address{}, &ValidationError{Precondition: ErrPaymentModeNotSelected}
	}
	if !mode.IsValid() {
		// Form validation should never let this through.
		log.Printf("[checkout][assembly] BUG: unvalidated payment mode reached assembly payment_mode=%q", mode)
		return entities.Address{}, &ValidationError{Precondition: ErrInvalidPaymentMode}
	}
	return addr, nil
}

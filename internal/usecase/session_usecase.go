package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"booze/internal/domain/entities"
	"booze/internal/domain/store"
	"booze/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidSessionID = errors.New("invalid session id")

const defaultSubmitLockTTL = 30 * time.Second

type CartLine struct {
	entities.LineItem
	Name        string
	NamePending bool
}

// CartView is the cart as shown to the shopper. DeliveryTaxCents is zero for
// an empty cart.
type CartView struct {
	Lines            []CartLine
	TotalQuantity    int
	SubtotalCents    int64
	DeliveryTaxCents int64
	TotalCents       int64
}

// CheckoutCommand carries what the checkout form collected. CustomerID comes
// from the authenticated caller and may be empty for guests.
type CheckoutCommand struct {
	SessionID      string
	CustomerID     string
	IdempotencyKey string
	PaymentMode    entities.PaymentMode
}

// ISessionUseCase exposes cart and address operations of a shopper session,
// plus checkout of the session's cart.
type ISessionUseCase interface {
	GetCart(ctx context.Context, sessionID string) (CartView, error)
	AddItem(ctx context.Context, sessionID, productID string) (CartView, error)
	DecrementItem(ctx context.Context, sessionID, productID string) (CartView, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (CartView, error)
	ClearCart(ctx context.Context, sessionID string) (CartView, error)
	ConfirmAddress(ctx context.Context, sessionID string, addr entities.Address) (entities.Address, error)
	GetAddress(ctx context.Context, sessionID string) (entities.Address, bool, error)
	ClearAddress(ctx context.Context, sessionID string) error
	Checkout(ctx context.Context, cmd CheckoutCommand) (entities.Order, error)
	EndSession(ctx context.Context, sessionID string) error
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

type session struct {
	id      string
	cart    *store.CartStore
	address *store.AddressStore
	dirty   bool
}

type SessionUseCase struct {
	sessions      interfaces.ISessionRepository
	orders        interfaces.IOrderRepository
	catalog       ICatalogUseCase
	submitLockTTL time.Duration

	mu    sync.Mutex
	locks map[string]*sessionLock
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(sessions interfaces.ISessionRepository, orders interfaces.IOrderRepository, catalog ICatalogUseCase, submitLockTTL time.Duration) *SessionUseCase {
	if submitLockTTL <= 0 {
		submitLockTTL = defaultSubmitLockTTL
	}
	return &SessionUseCase{
		sessions:      sessions,
		orders:        orders,
		catalog:       catalog,
		submitLockTTL: submitLockTTL,
		locks:         make(map[string]*sessionLock),
	}
}

// GuestCustomerID is the customer key used for orders placed without a customer id.
func GuestCustomerID(sessionID string) string {
	return "session:" + strings.TrimSpace(sessionID)
}

func (u *SessionUseCase) GetCart(ctx context.Context, sessionID string) (CartView, error) {
	var view CartView
	err := u.withSession(ctx, sessionID, func(s *session) error {
		view = u.view(ctx, s.cart)
		return nil
	})
	return view, err
}

func (u *SessionUseCase) AddItem(ctx context.Context, sessionID, productID string) (CartView, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return CartView{}, ErrInvalidProductID
	}

	var view CartView
	err := u.withSession(ctx, sessionID, func(s *session) error {
		p, err := u.catalog.GetProduct(ctx, productID)
		if err != nil {
			return err
		}
		if err := s.cart.AddOrIncrement(p.ID, p.PriceCents); err != nil {
			return err
		}
		view = u.view(ctx, s.cart)
		return nil
	})
	return view, err
}

func (u *SessionUseCase) DecrementItem(ctx context.Context, sessionID, productID string) (CartView, error) {
	return u.mutateCart(ctx, sessionID, func(c *store.CartStore) { c.DecrementOrRemove(productID) })
}

func (u *SessionUseCase) RemoveItem(ctx context.Context, sessionID, productID string) (CartView, error) {
	return u.mutateCart(ctx, sessionID, func(c *store.CartStore) { c.RemoveAll(productID) })
}

func (u *SessionUseCase) ClearCart(ctx context.Context, sessionID string) (CartView, error) {
	return u.mutateCart(ctx, sessionID, func(c *store.CartStore) { c.Clear() })
}

func (u *SessionUseCase) ConfirmAddress(ctx context.Context, sessionID string, addr entities.Address) (entities.Address, error) {
	if err := addr.Validate(); err != nil {
		return entities.Address{}, err
	}
	err := u.withSession(ctx, sessionID, func(s *session) error {
		s.address.Confirm(addr)
		s.dirty = true
		return nil
	})
	if err != nil {
		return entities.Address{}, err
	}
	return addr, nil
}

func (u *SessionUseCase) GetAddress(ctx context.Context, sessionID string) (entities.Address, bool, error) {
	var (
		addr entities.Address
		ok   bool
	)
	err := u.withSession(ctx, sessionID, func(s *session) error {
		addr, ok = s.address.Address()
		return nil
	})
	return addr, ok, err
}

func (u *SessionUseCase) ClearAddress(ctx context.Context, sessionID string) error {
	return u.withSession(ctx, sessionID, func(s *session) error {
		if s.address.IsConfirmed() {
			s.address.Clear()
			s.dirty = true
		}
		return nil
	})
}

// Checkout submits the session's cart. Only one checkout per session may run
// at a time, across every instance sharing the session store.
func (u *SessionUseCase) Checkout(ctx context.Context, cmd CheckoutCommand) (entities.Order, error) {
	sessionID := strings.TrimSpace(cmd.SessionID)
	if sessionID == "" {
		return entities.Order{}, ErrInvalidSessionID
	}
	log.Printf("[checkout][usecase] start session_id=%s payment_mode=%s", sessionID, cmd.PaymentMode)

	token, acquired, err := u.sessions.AcquireSubmitLock(ctx, sessionID, u.submitLockTTL)
	if err != nil {
		log.Printf("[checkout][usecase] submit lock failed session_id=%s err=%v", sessionID, err)
		return entities.Order{}, err
	}
	if !acquired {
		log.Printf("[checkout][usecase] submit already in progress session_id=%s", sessionID)
		return entities.Order{}, ErrSubmitInProgress
	}
	defer func() {
		if err := u.sessions.ReleaseSubmitLock(context.WithoutCancel(ctx), sessionID, token); err != nil {
			log.Printf("[checkout][usecase] submit lock release failed session_id=%s err=%v", sessionID, err)
		}
	}()

	customerID := strings.TrimSpace(cmd.CustomerID)
	if customerID == "" {
		customerID = GuestCustomerID(sessionID)
	}

	var (
		order     entities.Order
		submitted bool
	)
	err = u.withSession(ctx, sessionID, func(s *session) error {
		assembly := NewOrderAssembly(s.cart, s.address, u.orders, customerID)
		var subErr error
		order, subErr = assembly.SubmitWithID(ctx, orderIDFromKey(sessionID, cmd.IdempotencyKey), cmd.PaymentMode)
		submitted = subErr == nil
		return subErr
	})
	if err != nil && !submitted {
		return entities.Order{}, err
	}
	if err != nil {
		// The order is stored; only the emptied cart failed to reach the session store.
		log.Printf("[checkout][usecase] WARN order persisted but session save failed session_id=%s order_id=%s err=%v", sessionID, order.ID, err)
	}
	log.Printf("[checkout][usecase] success session_id=%s order_id=%s total_cents=%d", sessionID, order.ID, order.TotalAmountCents)
	return order, nil
}

// EndSession drops the session's cart and address.
func (u *SessionUseCase) EndSession(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	unlock := u.lock(sessionID)
	defer unlock()

	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		log.Printf("[session][usecase] delete failed session_id=%s err=%v", sessionID, err)
		return err
	}
	return nil
}

// orderIDFromKey derives a stable order ID from an idempotency key, scoped to
// the session so two shoppers can reuse the same key.
func orderIDFromKey(sessionID, key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(sessionID+":"+key)).String()
}

func (u *SessionUseCase) mutateCart(ctx context.Context, sessionID string, fn func(c *store.CartStore)) (CartView, error) {
	var view CartView
	err := u.withSession(ctx, sessionID, func(s *session) error {
		fn(s.cart)
		view = u.view(ctx, s.cart)
		return nil
	})
	return view, err
}

// withSession loads the session, runs fn with the session locked and saves it
// back when fn changed something. A failing fn leaves the stored snapshot as it was.
func (u *SessionUseCase) withSession(ctx context.Context, sessionID string, fn func(s *session) error) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	unlock := u.lock(sessionID)
	defer unlock()

	snap, err := u.sessions.Load(ctx, sessionID)
	if err != nil {
		log.Printf("[session][usecase] load failed session_id=%s err=%v", sessionID, err)
		return err
	}

	s := &session{
		id:      sessionID,
		cart:    store.NewCartStore(snap.Items...),
		address: store.NewAddressStore(),
	}
	if snap.Address != nil {
		s.address.Confirm(*snap.Address)
	}
	s.cart.Subscribe(func(store.CartEvent) { s.dirty = true })

	if err := fn(s); err != nil {
		return err
	}
	if !s.dirty {
		return nil
	}

	out := entities.SessionSnapshot{ID: sessionID, Items: s.cart.Items()}
	if addr, ok := s.address.Address(); ok {
		out.Address = &addr
	}
	if err := u.sessions.Save(ctx, out); err != nil {
		log.Printf("[session][usecase] save failed session_id=%s err=%v", sessionID, err)
		return err
	}
	return nil
}

func (u *SessionUseCase) lock(sessionID string) func() {
	u.mu.Lock()
	l, ok := u.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		u.locks[sessionID] = l
	}
	l.refs++
	u.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		u.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(u.locks, sessionID)
		}
		u.mu.Unlock()
	}
}

func (u *SessionUseCase) view(ctx context.Context, cart *store.CartStore) CartView {
	items := cart.Items()
	lines := make([]CartLine, 0, len(items))
	for _, it := range items {
		line := CartLine{LineItem: it}
		if u.catalog != nil {
			line.Name, line.NamePending = u.catalog.ResolveProductName(ctx, it.ProductID)
		}
		lines = append(lines, line)
	}

	v := CartView{
		Lines:         lines,
		TotalQuantity: cart.TotalQuantity(),
		SubtotalCents: cart.Subtotal(),
		TotalCents:    cart.TotalWithTax(),
	}
	if !cart.IsEmpty() {
		v.DeliveryTaxCents = entities.DeliveryTaxCents
	}
	return v
}

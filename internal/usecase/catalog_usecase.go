package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"booze/internal/domain/entities"
	"booze/internal/usecase/interfaces"

	"golang.org/x/sync/singleflight"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidProductID  = errors.New("invalid product id")
	errCatalogNotWired   = errors.New("product repository not configured")
	defaultLookupTimeout = 5 * time.Second
)

// ICatalogUseCase resolves products for the cart and for order history.
//
// ResolveProductName never blocks on the repository: on a cache miss it starts
// a background lookup and reports pending=true.

type ICatalogUseCase interface {
	ResolveProductName(ctx context.Context, productID string) (name string, pending bool)
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
}

// CatalogUseCase keeps product names in memory for the life of the process.
// GetProduct and ListProducts overwrite cached names with what the repository
// returns, so a renamed product shows its new name after the next browse.
type CatalogUseCase struct {
	repo          interfaces.IProductRepository
	lookupTimeout time.Duration

	mu    sync.RWMutex
	names map[string]string
	sfg   singleflight.Group
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IProductRepository, lookupTimeout time.Duration) *CatalogUseCase {
	if lookupTimeout <= 0 {
		lookupTimeout = defaultLookupTimeout
	}
	return &CatalogUseCase{
		repo:          repo,
		lookupTimeout: lookupTimeout,
		names:         make(map[string]string),
	}
}

func (u *CatalogUseCase) ResolveProductName(_ context.Context, productID string) (string, bool) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return "", false
	}
	if name, ok := u.cachedName(productID); ok {
		return name, false
	}
	if u.repo == nil {
		return "", false
	}

	u.lookup(productID)
	return "", true
}

// lookup starts the background fetch of a product name, or joins the one
// already running for the same id. The lookup runs detached from the request
// that triggered it; the request is usually gone before the repository answers.
func (u *CatalogUseCase) lookup(productID string) <-chan singleflight.Result {
	return u.sfg.DoChan(productID, func() (interface{}, error) {
		if name, ok := u.cachedName(productID); ok {
			return name, nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), u.lookupTimeout)
		defer cancel()

		p, err := u.repo.GetByID(ctx, productID)
		if err != nil {
			log.Printf("[catalog][usecase] background lookup failed product_id=%s err=%v", productID, err)
			return "", err
		}
		// Unknown products are cached with an empty name so they stop being pending.
		u.remember(productID, p)
		return p.Name, nil
	})
}

func (u *CatalogUseCase) cachedName(productID string) (string, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	name, ok := u.names[productID]
	return name, ok
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if u.repo == nil {
		return entities.Product{}, errCatalogNotWired
	}

	p, err := u.repo.GetByID(ctx, productID)
	if err != nil {
		return entities.Product{}, err
	}
	u.remember(productID, p)
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	if u.repo == nil {
		return nil, errCatalogNotWired
	}
	products, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		u.remember(p.ID, p)
	}
	return products, nil
}

func (u *CatalogUseCase) remember(productID string, p entities.Product) {
	if productID == "" {
		return
	}
	u.mu.Lock()
	u.names[productID] = p.Name
	u.mu.Unlock()
}

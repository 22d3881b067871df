package interfaces

import (
	"context"

	"booze/internal/domain/entities"
)

// IProductRepository abstracts the product catalog. GetByID returns a zero
// Product when the id is unknown.

type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}

package interfaces

import (
	"context"

	"booze/internal/domain/entities"
)

// IOrderRepository abstracts order persistence (write path) and the order
// history source (read path).
//
// Persist must be safe to repeat with the same order ID: a second write of an
// already stored order reports success without duplicating it.

type IOrderRepository interface {
	Persist(ctx context.Context, o entities.Order) error
	ListSummariesByCustomer(ctx context.Context, customerID string) ([]entities.OrderSummary, error)
	ListLineRecordsByCustomer(ctx context.Context, customerID string) ([]entities.OrderLineRecord, error)
}

package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"booze/internal/domain/entities"
	"booze/internal/usecase/interfaces"
)

var ErrInvalidCustomerID = errors.New("invalid customer id")

// GroupByOrder buckets records by OrderID in a single pass. Records keep their
// input order within a bucket; nothing is sorted or deduplicated.
func GroupByOrder(records []entities.OrderLineRecord) map[string][]entities.OrderLineRecord {
	groups := make(map[string][]entities.OrderLineRecord)
	for _, r := range records {
		groups[r.OrderID] = append(groups[r.OrderID], r)
	}
	return groups
}

type OrderHistoryLine struct {
	ProductID   string
	Quantity    int
	Name        string
	NamePending bool
}

type OrderHistoryEntry struct {
	Summary entities.OrderSummary
	Lines   []OrderHistoryLine
}

type IOrderHistoryUseCase interface {
	ListByCustomer(ctx context.Context, customerID string) ([]OrderHistoryEntry, error)
}

type OrderHistoryUseCase struct {
	repo    interfaces.IOrderRepository
	catalog ICatalogUseCase
}

var _ IOrderHistoryUseCase = (*OrderHistoryUseCase)(nil)

func NewOrderHistoryUseCase(repo interfaces.IOrderRepository, catalog ICatalogUseCase) *OrderHistoryUseCase {
	return &OrderHistoryUseCase{repo: repo, catalog: catalog}
}

// ListByCustomer returns the customer's orders, newest first, each with its lines.
func (u *OrderHistoryUseCase) ListByCustomer(ctx context.Context, customerID string) ([]OrderHistoryEntry, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}

	summaries, err := u.repo.ListSummariesByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	records, err := u.repo.ListLineRecordsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	groups := GroupByOrder(records)

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	entries := make([]OrderHistoryEntry, 0, len(summaries))
	for _, s := range summaries {
		group := groups[s.OrderID]
		lines := make([]OrderHistoryLine, 0, len(group))
		for _, r := range group {
			line := OrderHistoryLine{ProductID: r.ProductID, Quantity: r.Quantity}
			if u.catalog != nil {
				line.Name, line.NamePending = u.catalog.ResolveProductName(ctx, r.ProductID)
			}
			lines = append(lines, line)
		}
		entries = append(entries, OrderHistoryEntry{Summary: s, Lines: lines})
	}
	return entries, nil
}

package response

import (
	"time"

	"booze/internal/domain/entities"
	"booze/internal/usecase"
)

type OrderLineResponse struct {
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	UnitPrice      string `json:"unit_price"`
}

type OrderResponse struct {
	ID               string              `json:"id"`
	CustomerID       string              `json:"customer_id"`
	PaymentMode      string              `json:"payment_mode"`
	Address          entities.Address    `json:"address"`
	Items            []OrderLineResponse `json:"items"`
	DeliveryTaxCents int64               `json:"delivery_tax_cents"`
	TotalAmountCents int64               `json:"total_amount_cents"`
	TotalAmount      string              `json:"total_amount"`
	CreatedAt        time.Time           `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderLineResponse, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		items = append(items, OrderLineResponse{
			ProductID:      li.ProductID,
			Quantity:       li.Quantity,
			UnitPriceCents: li.UnitPriceCents,
			UnitPrice:      Reais(li.UnitPriceCents),
		})
	}

	return OrderResponse{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		PaymentMode:      string(o.PaymentMode),
		Address:          o.Address,
		Items:            items,
		DeliveryTaxCents: entities.DeliveryTaxCents,
		TotalAmountCents: o.TotalAmountCents,
		TotalAmount:      Reais(o.TotalAmountCents),
		CreatedAt:        o.CreatedAt,
	}
}

type OrderHistoryLineResponse struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	NamePending bool   `json:"name_pending"`
	Quantity    int    `json:"quantity"`
}

type OrderHistoryResponse struct {
	OrderID          string                     `json:"order_id"`
	PaymentMode      string                     `json:"payment_mode"`
	TotalAmountCents int64                      `json:"total_amount_cents"`
	TotalAmount      string                     `json:"total_amount"`
	CreatedAt        time.Time                  `json:"created_at"`
	Items            []OrderHistoryLineResponse `json:"items"`
}

func FromOrderHistory(entries []usecase.OrderHistoryEntry) []OrderHistoryResponse {
	out := make([]OrderHistoryResponse, 0, len(entries))
	for _, e := range entries {
		lines := make([]OrderHistoryLineResponse, 0, len(e.Lines))
		for _, l := range e.Lines {
			lines = append(lines, OrderHistoryLineResponse{
				ProductID:   l.ProductID,
				Name:        l.Name,
				NamePending: l.NamePending,
				Quantity:    l.Quantity,
			})
		}
		out = append(out, OrderHistoryResponse{
			OrderID:          e.Summary.OrderID,
			PaymentMode:      string(e.Summary.PaymentMode),
			TotalAmountCents: e.Summary.TotalAmountCents,
			TotalAmount:      Reais(e.Summary.TotalAmountCents),
			CreatedAt:        e.Summary.CreatedAt,
			Items:            lines,
		})
	}
	return out
}

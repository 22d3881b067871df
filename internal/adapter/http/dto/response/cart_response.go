package response

import "booze/internal/usecase"

type CartLineResponse struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	NamePending    bool   `json:"name_pending"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	UnitPrice      string `json:"unit_price"`
	SubtotalCents  int64  `json:"subtotal_cents"`
	Subtotal       string `json:"subtotal"`
}

type CartResponse struct {
	Items            []CartLineResponse `json:"items"`
	TotalQuantity    int                `json:"total_quantity"`
	SubtotalCents    int64              `json:"subtotal_cents"`
	Subtotal         string             `json:"subtotal"`
	DeliveryTaxCents int64              `json:"delivery_tax_cents"`
	DeliveryTax      string             `json:"delivery_tax"`
	TotalCents       int64              `json:"total_cents"`
	Total            string             `json:"total"`
}

func FromCartView(v usecase.CartView) CartResponse {
	items := make([]CartLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		items = append(items, CartLineResponse{
			ProductID:      l.ProductID,
			Name:           l.Name,
			NamePending:    l.NamePending,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			UnitPrice:      Reais(l.UnitPriceCents),
			SubtotalCents:  l.Subtotal(),
			Subtotal:       Reais(l.Subtotal()),
		})
	}

	return CartResponse{
		Items:            items,
		TotalQuantity:    v.TotalQuantity,
		SubtotalCents:    v.SubtotalCents,
		Subtotal:         Reais(v.SubtotalCents),
		DeliveryTaxCents: v.DeliveryTaxCents,
		DeliveryTax:      Reais(v.DeliveryTaxCents),
		TotalCents:       v.TotalCents,
		Total:            Reais(v.TotalCents),
	}
}

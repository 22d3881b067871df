package entities

// DeliveryTaxCents is the flat delivery fee added to every non-empty order (R$ 3,00).
const DeliveryTaxCents int64 = 300

// LineItem is one product-and-quantity entry within a cart or an order.
//
// Monetary representation:
//   - UnitPriceCents is the catalog price in centavos at the time the item was added.
type LineItem struct {
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

func (li LineItem) Subtotal() int64 {
	return int64(li.Quantity) * li.UnitPriceCents
}

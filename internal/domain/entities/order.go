package entities

import "time"

// Order is the immutable record produced by checkout and handed to persistence.
//
// Storage model (DynamoDB):
//   - orders: PK id, GSI customer_id-index
//   - order_products: PK order_id, SK line, GSI customer_id-index
type Order struct {
	ID               string      `json:"id"`
	CustomerID       string      `json:"customer_id"`
	Address          Address     `json:"address"`
	PaymentMode      PaymentMode `json:"payment_mode"`
	LineItems        []LineItem  `json:"line_items"`
	TotalAmountCents int64       `json:"total_amount_cents"`
	CreatedAt        time.Time   `json:"created_at"`
}

// OrderLineRecord is the flat line record returned by the order history source.
type OrderLineRecord struct {
	ProductID string `json:"product_id"`
	OrderID   string `json:"order_id"`
	Quantity  int    `json:"quantity"`
}

// OrderSummary is the order header shown in order history.
type OrderSummary struct {
	OrderID          string      `json:"order_id"`
	CustomerID       string      `json:"customer_id"`
	PaymentMode      PaymentMode `json:"payment_mode"`
	TotalAmountCents int64       `json:"total_amount_cents"`
	CreatedAt        time.Time   `json:"created_at"`
}

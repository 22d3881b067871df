package entities

// Product is a catalog entry.
//
// Storage model (DynamoDB):
//   - PK: id
type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

package request

import "strings"

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (r AddCartItemRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}

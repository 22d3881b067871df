package handlers

import (
	"log"
	"net/http"
	"strings"

	response "booze/internal/adapter/http/dto/response"
	"booze/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	usecase usecase.IOrderHistoryUseCase
}

func NewOrderHandler(uc usecase.IOrderHistoryUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders returns the caller's orders, newest first. Without X-Customer-ID
// it lists the guest orders placed from the current session.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	customerID := strings.TrimSpace(c.GetHeader(HeaderCustomerID))
	if customerID == "" {
		customerID = usecase.GuestCustomerID(sessionID(c))
	}

	entries, err := h.usecase.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("[order][handler] list failed customer_id=%s err=%v", customerID, err)
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrderHistory(entries))
}

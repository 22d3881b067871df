package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	request "booze/internal/adapter/http/dto/request"
	response "booze/internal/adapter/http/dto/response"
	"booze/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler submits the session's cart as an order.
//
// Clients should send an Idempotency-Key header and reuse it when retrying a
// failed submission; the same key always maps to the same order id.
type CheckoutHandler struct {
	usecase usecase.ISessionUseCase
}

func NewCheckoutHandler(uc usecase.ISessionUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	// An empty body is a checkout with no payment mode chosen yet.
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidRequest)
		return
	}
	mode, err := payload.ResolvePaymentMode()
	if err != nil {
		log.Printf("[checkout][handler] invalid payment mode session_id=%s raw=%q", sessionID(c), payload.PaymentMode)
		writeError(c, errInvalidRequest)
		return
	}

	cmd := usecase.CheckoutCommand{
		SessionID:      sessionID(c),
		CustomerID:     strings.TrimSpace(c.GetHeader(HeaderCustomerID)),
		IdempotencyKey: strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey)),
		PaymentMode:    mode,
	}

	order, err := h.usecase.Checkout(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[checkout][handler] submit failed session_id=%s err=%v", cmd.SessionID, err)
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

package handlers

import (
	"log"
	"net/http"

	request "booze/internal/adapter/http/dto/request"
	response "booze/internal/adapter/http/dto/response"
	"booze/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CartHandler handles the shopper's cart. Every route responds with the full
// cart so the client can redraw totals without another round trip.
type CartHandler struct {
	usecase usecase.ISessionUseCase
}

func NewCartHandler(uc usecase.ISessionUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.usecase.GetCart(c.Request.Context(), sessionID(c))
	h.respond(c, "get", "", view, err)
}

// AddItem adds one unit of a product, priced from the catalog.
func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	productID := payload.ResolveProductID()
	if productID == "" {
		writeError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.AddItem(c.Request.Context(), sessionID(c), productID)
	h.respond(c, "add", productID, view, err)
}

func (h *CartHandler) DecrementItem(c *gin.Context) {
	productID := c.Param("product_id")
	view, err := h.usecase.DecrementItem(c.Request.Context(), sessionID(c), productID)
	h.respond(c, "decrement", productID, view, err)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Param("product_id")
	view, err := h.usecase.RemoveItem(c.Request.Context(), sessionID(c), productID)
	h.respond(c, "remove", productID, view, err)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	view, err := h.usecase.ClearCart(c.Request.Context(), sessionID(c))
	h.respond(c, "clear", "", view, err)
}

func (h *CartHandler) respond(c *gin.Context, op, productID string, view usecase.CartView, err error) {
	if err != nil {
		log.Printf("[cart][handler] %s failed session_id=%s product_id=%s err=%v", op, sessionID(c), productID, err)
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCartView(view))
}

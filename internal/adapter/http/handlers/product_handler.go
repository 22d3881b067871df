package handlers

import (
	"log"
	"net/http"

	response "booze/internal/adapter/http/dto/response"
	"booze/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewProductHandler(uc usecase.ICatalogUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context())
	if err != nil {
		log.Printf("[product][handler] list failed err=%v", err)
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	p, err := h.usecase.GetProduct(c.Request.Context(), productID)
	if err != nil {
		log.Printf("[product][handler] get failed product_id=%s err=%v", productID, err)
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

package handlers

import (
	"log"
	"net/http"

	request "booze/internal/adapter/http/dto/request"
	response "booze/internal/adapter/http/dto/response"
	"booze/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	usecase usecase.ISessionUseCase
}

func NewAddressHandler(uc usecase.ISessionUseCase) *AddressHandler {
	return &AddressHandler{usecase: uc}
}

// ConfirmAddress replaces the session's delivery address.
func (h *AddressHandler) ConfirmAddress(c *gin.Context) {
	var payload request.AddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	addr, err := h.usecase.ConfirmAddress(c.Request.Context(), sessionID(c), payload.ToEntity())
	if err != nil {
		log.Printf("[address][handler] confirm failed session_id=%s err=%v", sessionID(c), err)
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAddress(addr, true))
}

func (h *AddressHandler) GetAddress(c *gin.Context) {
	addr, ok, err := h.usecase.GetAddress(c.Request.Context(), sessionID(c))
	if err != nil {
		log.Printf("[address][handler] get failed session_id=%s err=%v", sessionID(c), err)
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAddress(addr, ok))
}

func (h *AddressHandler) ClearAddress(c *gin.Context) {
	if err := h.usecase.ClearAddress(c.Request.Context(), sessionID(c)); err != nil {
		log.Printf("[address][handler] clear failed session_id=%s err=%v", sessionID(c), err)
		writeError(c, mapStoreError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

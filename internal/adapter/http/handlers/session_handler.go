package handlers

import (
	"log"
	"net/http"

	"booze/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// EndSession discards the cart and address of the current session.
func (h *SessionHandler) EndSession(c *gin.Context) {
	if err := h.usecase.EndSession(c.Request.Context(), sessionID(c)); err != nil {
		log.Printf("[session][handler] end failed session_id=%s err=%v", sessionID(c), err)
		writeError(c, mapStoreError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderSessionID      = "X-Session-ID"
	HeaderCustomerID     = "X-Customer-ID"
	HeaderIdempotencyKey = "Idempotency-Key"

	sessionIDKey = "session_id"
)

// SessionMiddleware resolves the shopper session of the request. A request
// without X-Session-ID starts a new session; the id is always echoed back so
// the client can keep using it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := strings.TrimSpace(c.GetHeader(HeaderSessionID))
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Set(sessionIDKey, sessionID)
		c.Header(HeaderSessionID, sessionID)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

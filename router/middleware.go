package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// CtxKeyRequestID is the gin context key holding the request ID.
const CtxKeyRequestID = "_request_id"

// RequestID reuses the caller's X-Request-ID or assigns a new UUID, and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(CtxKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// Deadline bounds the request context by timeout. Handlers that fan out work
// stop early once the context is done; a zero timeout leaves the context alone.
func Deadline(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

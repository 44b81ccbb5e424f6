package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	// Key of the request id in the gin context
	RequestIDKey = "request_id"
)

// RequestID reuses the caller's X-Request-ID or generates one, and echoes it
// back on the response.
func (m Middleware) RequestID(ctx *gin.Context) {
	id := ctx.GetHeader(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	ctx.Set(RequestIDKey, id)
	ctx.Header(RequestIDHeader, id)
	ctx.Next()
}

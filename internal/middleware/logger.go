package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

func (m Middleware) Logger(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()

	status := ctx.Writer.Status()
	fields := []any{
		"request_id", ctx.GetString(RequestIDKey),
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
		"status", status,
		"latency_ms", float64(time.Since(start).Microseconds()) / 1000,
	}

	switch {
	case status >= 500:
		m.app.Logger.Errorw("Request failed", fields...)
	case status >= 400:
		m.app.Logger.Warnw("Request rejected", fields...)
	default:
		m.app.Logger.Infow("Request handled", fields...)
	}
}

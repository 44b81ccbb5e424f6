package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const metricsPath = "/metrics"

func (m Middleware) Metrics(ctx *gin.Context) {
	if ctx.Request.URL.Path == metricsPath {
		ctx.Next()
		return
	}

	ctx.Next()

	// route pattern keeps the label set bounded, unmatched routes share one label
	path := ctx.FullPath()
	if path == "" {
		path = "unmatched"
	}

	m.requestCount.WithLabelValues(
		ctx.Request.Method,
		path,
		strconv.Itoa(ctx.Writer.Status()),
	).Inc()
}

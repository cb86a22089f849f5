package server

import (
	"strconv"
	"time"

	"competition-hub/internal/metrics"
	"competition-hub/utils"

	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags each request with an id, reusing the caller's one when it is a UUID
func RequestIDMiddleware(c *gin.Context) {
	id := utils.RequestID(c.GetHeader(requestIDHeader))
	c.Set(utils.RequestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": c.GetString(utils.RequestIDKey),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}

// MetricsMiddleware records request counts and durations per route
func MetricsMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	status := strconv.Itoa(c.Writer.Status())
	metrics.RequestCounter.WithLabelValues(status, c.Request.Method, path).Inc()
	metrics.RequestDuration.WithLabelValues(status, c.Request.Method, path).Observe(time.Since(start).Seconds())
}

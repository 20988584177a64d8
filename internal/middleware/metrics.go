package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fleetadmin/internal/metrics"
)

// Metrics records request duration by route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// route template, not the raw path, to bound label cardinality
		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}

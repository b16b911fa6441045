package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"portfolio.backend/pkg/metrics"
)

// unmatchedRoute labels requests that hit no registered route, keeping label cardinality bounded
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latencies per route template
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

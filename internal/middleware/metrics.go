package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"travel_api/internal/metrics"
)

// Metrics records request count and latency per route. The route
// template (not the raw URL) is used as the path label to keep the
// cardinality bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.RequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

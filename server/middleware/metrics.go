package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/janm-comcon/stdtext/server/monitoring"
)

// GinRequestMetricsMiddleware records every request into the collector.
// The route pattern is used as the endpoint key so parameterized routes
// share one bucket; unmatched requests fall back to the raw path.
func GinRequestMetricsMiddleware(metrics *monitoring.RequestMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}
		metrics.Record(c.Request.Method+" "+endpoint, c.Writer.Status(), time.Since(start))
	}
}

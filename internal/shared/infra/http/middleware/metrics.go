package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davicafu/humanidadunida/internal/shared/infra/metrics"
)

// Metrics instrumenta cada petición con los colectores HTTP de Prometheus.
// La etiqueta path usa la ruta registrada para no disparar la cardinalidad.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.HTTPInflight.Inc()
		defer metrics.HTTPInflight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		metrics.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPLatency.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

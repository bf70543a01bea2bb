package middleware

import (
	"time"

	"bizpulse-api/src/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const unmatchedRoute = "unmatched"

// RequestLogger records every request in the metrics collector and logs it.
// Routes are labelled by their pattern so ids in paths do not explode label
// cardinality.
func RequestLogger(recorder metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		status := c.Writer.Status()
		duration := time.Since(start)

		recorder.RecordRequest(c.Request.Method, route, status, duration)

		entry := logrus.WithFields(logrus.Fields{
			"method":      c.Request.Method,
			"route":       route,
			"status":      status,
			"duration_ms": duration.Milliseconds(),
			"client_ip":   c.ClientIP(),
		})
		if name, ok := c.Get("route_name"); ok {
			entry = entry.WithField("route_name", name)
		}

		switch {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Debug("Request completed")
		}
	}
}

package middleware

import (
	"time" // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// RequestLogger writes one access log entry per request
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":  c.Request.Method,           // HTTP method
			"path":    c.Request.URL.Path,         // Raw path, not the route template
			"status":  c.Writer.Status(),          // Response status
			"latency": time.Since(start).String(), // Handling time
			"client":  c.ClientIP(),               // Caller address
		}
		if subject, ok := c.Get(SubjectKey); ok {
			fields["subject"] = subject // Identified caller
		}
		entry := log.WithFields(fields)
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
	}
}

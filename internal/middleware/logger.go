package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request and recovers from handler panics.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				log.WithFields(requestFields(c, start)).
					WithField("stack", string(debug.Stack())).
					Errorf("panic recovered: %v", recovered)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"detail": "Internal server error",
				})
				return
			}

			fields := requestFields(c, start)
			switch {
			case c.Writer.Status() >= http.StatusInternalServerError:
				log.WithFields(fields).Error("request failed")
			case c.Writer.Status() >= http.StatusBadRequest:
				log.WithFields(fields).Warn("request rejected")
			default:
				log.WithFields(fields).Info("request")
			}
		}()

		c.Next()
	}
}

func requestFields(c *gin.Context, start time.Time) logrus.Fields {
	return logrus.Fields{
		"status":     c.Writer.Status(),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"query":      c.Request.URL.RawQuery,
		"client_ip":  c.ClientIP(),
		"request_id": c.GetString(requestIDKey),
		"latency":    time.Since(start).String(),
	}
}

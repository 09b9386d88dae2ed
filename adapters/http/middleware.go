package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

// ErrorMiddleware turns the last error attached to the context into the JSON
// error envelope. Handlers call c.Error and return; only AppError.Message ever
// reaches the client, Details stay in the server log.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			log.Error("unhandled error", err, zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		status := apperror.ToHTTPStatus(appErr)
		if status >= http.StatusInternalServerError {
			log.Error("request failed", appErr.Err,
				zap.String("path", c.Request.URL.Path),
				zap.String("details", appErr.Details),
			)
		} else {
			log.Warn("request rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", status),
				zap.String("details", appErr.Details),
			)
		}
		c.JSON(status, appErr.ToJSON())
	}
}

// RequestLogger logs one line per request after it completes.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

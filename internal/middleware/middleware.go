package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/booklend/library-api/internal/metrics"
	"github.com/booklend/library-api/internal/repository"
	"github.com/booklend/library-api/internal/validation"
)

// RequestLogger logs one structured line per request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// Metrics records request counts and latency per route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.RequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}

// ErrorHandler turns errors propagated via c.Error into the JSON envelope.
// Known domain errors map to client statuses; everything else is a 500 with
// a generic message, logged server-side.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		status := http.StatusInternalServerError
		message := "Server error"

		switch {
		case errors.Is(err, repository.ErrBookNotFound),
			errors.Is(err, gorm.ErrRecordNotFound):
			status = http.StatusNotFound
			message = "Book not found"
		case errors.Is(err, repository.ErrInsufficientCopies):
			status = http.StatusBadRequest
			message = err.Error()
		default:
			log.Error("unhandled request error",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}

		c.JSON(status, validation.ErrorResponse{
			Success: false,
			Message: message,
		})
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
)

const (
	// RequestIDContextKey é a chave do ID da requisição no contexto
	RequestIDContextKey = "request_id"
	// RequestIDHeader é propagado na resposta
	RequestIDHeader = "X-Request-ID"
)

// RequestLogger atribui um ID à requisição e registra status e latência
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		args := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"actor_id", GetActor(c).UserID,
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request failed", args...)
		default:
			logger.Info("request handled", args...)
		}
	}
}

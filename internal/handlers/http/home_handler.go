package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/handlers/middleware"
)

// HomeHandler serve a página inicial e o health check
type HomeHandler struct {
	sessions *middleware.SessionManager
	db       *gorm.DB
	env      string
	logger   ports.Logger
}

// NewHomeHandler cria um novo HomeHandler
func NewHomeHandler(sessions *middleware.SessionManager, db *gorm.DB, env string, logger ports.Logger) *HomeHandler {
	return &HomeHandler{sessions: sessions, db: db, env: env, logger: logger}
}

// Home mostra o usuário logado (com grupos) e as mensagens pendentes
func (h *HomeHandler) Home(c *gin.Context) {
	home(c, h.sessions, h.logger)
}

// Health confere o banco de dados
func (h *HomeHandler) Health(c *gin.Context) {
	status, code := "ok", http.StatusOK

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.logger.Error("health check failed", "error", err)
		status, code = "unavailable", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": status,
		"env":    h.env,
	})
}

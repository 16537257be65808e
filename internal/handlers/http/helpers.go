package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/handlers/dto"
	"github.com/rafabene/agendafoto-backend/internal/handlers/middleware"
)

// Destino padrão após login
const defaultLoginRedirect = "/listar/sessoes"

// flasher grava mensagens flash traduzidas antes de redirecionar
type flasher struct {
	sessions *middleware.SessionManager
	logger   ports.Logger
}

// redirect enfileira a mensagem e responde 303 (POST -> GET)
func (f flasher) redirect(c *gin.Context, target, messageKey string, params ...map[string]interface{}) {
	f.redirectWithStatus(c, http.StatusSeeOther, target, messageKey, params...)
}

func (f flasher) redirectWithStatus(c *gin.Context, status int, target, messageKey string, params ...map[string]interface{}) {
	if messageKey != "" {
		if err := f.sessions.AddFlash(c, dto.T(c, messageKey, params...)); err != nil {
			f.logger.Warn("failed to store flash message", "error", err)
		}
	}
	c.Redirect(status, target)
}

// parseID lê um ID numérico do caminho; IDs inválidos respondem 404
func parseID(c *gin.Context, param, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, resource))
		return 0, false
	}
	return uint(id), true
}

// bind aceita formulário ou JSON conforme o Content-Type
func bind(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		respondBindingError(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, query *dto.ListQuery) bool {
	if err := c.ShouldBindQuery(query); err != nil {
		respondBindingError(c, err)
		return false
	}
	return true
}

func form(c *gin.Context, tituloKey, botaoKey string, objeto interface{}) {
	c.JSON(http.StatusOK, dto.FormResponse{
		Titulo: dto.T(c, tituloKey),
		Botao:  dto.T(c, botaoKey),
		Objeto: objeto,
	})
}

// safeNext aceita apenas caminhos locais como destino pós-login
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return defaultLoginRedirect
	}
	return next
}

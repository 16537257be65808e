package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendafoto-backend/internal/handlers/middleware"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/i18n"
)

const defaultLanguage = "pt-BR"

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "error.login.wrong_role", map[string]interface{}{"Group": "Cliente"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	i18nService, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		// sem serviço, a chave é devolvida
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// TError traduz um erro de domínio (a mensagem é o message ID)
func TError(c *gin.Context, err error, params ...map[string]interface{}) string {
	return T(c, err.Error(), params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(middleware.LanguageContextKey)
	if !exists {
		return defaultLanguage
	}

	langStr, ok := lang.(string)
	if !ok {
		return defaultLanguage
	}

	return langStr
}

package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/handlers/dto"
	"github.com/rafabene/agendafoto-backend/internal/handlers/middleware"
	"github.com/rafabene/agendafoto-backend/internal/infrastructure/i18n"
)

// Handlers agrupa os handlers registrados no router
type Handlers struct {
	Home      *HomeHandler
	Auth      *AuthHandler
	Account   *AccountHandler
	Cliente   *ClienteHandler
	Fotografo *FotografoHandler
	Estudio   *EstudioHandler
	Sessao    *SessaoHandler
	Portfolio *PortfolioHandler
}

// RouterConfig reúne o que o router precisa além dos handlers
type RouterConfig struct {
	BaseURL        string
	CORSOrigins    string
	TrustedProxies string
	I18n           *i18n.Service
	Authenticator  *middleware.Authenticator
	Logger         ports.Logger
}

// NewRouter monta o engine do Gin com middlewares e rotas
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	dto.RegisterValidators()

	router := gin.New()
	if err := router.SetTrustedProxies(splitList(cfg.TrustedProxies)); err != nil {
		cfg.Logger.Warn("invalid trusted proxies, ignoring forwarded headers", "error", err)
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger))

	// Base URL dos tipos de problema RFC 7807
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})

	router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(cfg.Authenticator.ResolveActor())

	// Públicas
	router.GET("/", h.Home.Home)
	router.GET("/health", h.Home.Health)
	router.GET("/login", h.Auth.LoginForm)
	router.POST("/login", h.Auth.Login)
	router.GET("/login/:profile", h.Auth.RoleLoginForm)
	router.POST("/login/:profile", h.Auth.RoleLogin)
	router.GET("/sair", h.Auth.Logout)
	router.GET("/cadastrar/usuario/:profile", h.Account.RegisterForm)
	router.POST("/cadastrar/usuario/:profile", h.Account.Register)

	authed := router.Group("", middleware.RequireAuth(Unauthorized))
	{
		authed.GET("/senha", h.Account.PasswordForm)
		authed.POST("/senha", h.Account.ChangePassword)
		authed.GET("/senha/ok", h.Account.PasswordDone)

		authed.GET("/listar/clientes", h.Cliente.List)
		authed.GET("/cadastrar/cliente", h.Cliente.CreateForm)
		authed.POST("/cadastrar/cliente", h.Cliente.Create)
		authed.GET("/editar/cliente/:id", h.Cliente.EditForm)
		authed.POST("/editar/cliente/:id", h.Cliente.Update)
		authed.GET("/excluir/cliente/:id", h.Cliente.DeleteForm)
		authed.POST("/excluir/cliente/:id", h.Cliente.Delete)

		authed.GET("/listar/fotografos", h.Fotografo.List)
		authed.GET("/cadastrar/fotografo", h.Fotografo.CreateForm)
		authed.POST("/cadastrar/fotografo", h.Fotografo.Create)
		authed.GET("/editar/fotografo/:id", h.Fotografo.EditForm)
		authed.POST("/editar/fotografo/:id", h.Fotografo.Update)
		authed.GET("/excluir/fotografo/:id", h.Fotografo.DeleteForm)
		authed.POST("/excluir/fotografo/:id", h.Fotografo.Delete)

		authed.GET("/listar/estudios", h.Estudio.List)
		authed.GET("/cadastrar/estudio", h.Estudio.CreateForm)
		authed.POST("/cadastrar/estudio", h.Estudio.Create)
		authed.GET("/editar/estudio/:id", h.Estudio.EditForm)
		authed.POST("/editar/estudio/:id", h.Estudio.Update)
		authed.GET("/excluir/estudio/:id", h.Estudio.DeleteForm)
		authed.POST("/excluir/estudio/:id", h.Estudio.Delete)

		authed.GET("/listar/sessoes", h.Sessao.List)
		authed.GET("/cadastrar/sessao", h.Sessao.CreateForm)
		authed.POST("/cadastrar/sessao", h.Sessao.Create)
		authed.GET("/editar/sessao/:id", h.Sessao.EditForm)
		authed.POST("/editar/sessao/:id", h.Sessao.Update)
		authed.GET("/excluir/sessao/:id", h.Sessao.DeleteForm)
		authed.POST("/excluir/sessao/:id", h.Sessao.Delete)

		authed.GET("/listar/portfolio/:fotografo_id", h.Portfolio.List)
		authed.POST("/cadastrar/portfolio/:fotografo_id", h.Portfolio.Create)
		authed.GET("/excluir/portfolio/:id", h.Portfolio.DeleteForm)
		authed.POST("/excluir/portfolio/:id", h.Portfolio.Delete)
	}

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/token", h.Auth.IssueToken)
	}

	return router
}

// splitList separa uma lista por vírgulas descartando itens vazios
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/services/access"
)

const (
	// ActorContextKey é a chave do ator autenticado no contexto do Gin
	ActorContextKey = "actor"
	// LoginPath é para onde requisições de navegador sem login são enviadas
	LoginPath = "/login"
)

// Authenticator resolve o ator a partir do token Bearer ou do cookie de sessão
type Authenticator struct {
	sessions *SessionManager
	tokens   ports.TokenIssuer
	users    repositories.UserRepository
	logger   ports.Logger
}

// NewAuthenticator cria um novo Authenticator
func NewAuthenticator(
	sessionManager *SessionManager,
	tokens ports.TokenIssuer,
	users repositories.UserRepository,
	logger ports.Logger,
) *Authenticator {
	return &Authenticator{
		sessions: sessionManager,
		tokens:   tokens,
		users:    users,
		logger:   logger,
	}
}

// ResolveActor carrega o usuário e define o ator (anônimo se não houver login válido)
func (a *Authenticator) ResolveActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := access.Anonymous()

		var (
			userID uint
			ok     bool
		)
		if raw, bearer := BearerToken(c); bearer {
			id, err := a.tokens.Verify(raw)
			userID, ok = id, err == nil
		} else {
			userID, ok = a.sessions.UserID(c)
		}

		if ok {
			user, err := a.users.FindByID(c.Request.Context(), userID)
			switch {
			case err != nil:
				a.logger.Error("failed to load session user", "user_id", userID, "error", err)
			case user != nil && user.IsActive:
				actor = access.ActorFromUser(user)
			}
		}

		c.Set(ActorContextKey, actor)
		c.Next()
	}
}

// RequireAuth bloqueia requisições anônimas. Clientes de API recebem a resposta
// de unauthorized; navegadores são redirecionados ao login com ?next=.
func RequireAuth(unauthorized gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetActor(c).IsAuthenticated() {
			c.Next()
			return
		}

		if WantsAPI(c) {
			unauthorized(c)
			c.Abort()
			return
		}

		target := LoginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

// GetActor retorna o ator da requisição (anônimo se ausente)
func GetActor(c *gin.Context) access.Actor {
	if v, ok := c.Get(ActorContextKey); ok {
		if actor, ok := v.(access.Actor); ok {
			return actor
		}
	}
	return access.Anonymous()
}

// BearerToken extrai o token do header Authorization
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[7:])
	return token, token != ""
}

// WantsAPI indica cliente de API (Bearer ou rota /api)
func WantsAPI(c *gin.Context) bool {
	if _, ok := BearerToken(c); ok {
		return true
	}
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}

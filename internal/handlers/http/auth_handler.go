package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/handlers/dto"
	"github.com/rafabene/agendafoto-backend/internal/handlers/middleware"
	"github.com/rafabene/agendafoto-backend/internal/services"
	"github.com/rafabene/agendafoto-backend/internal/services/access"
)

// AuthHandler lida com login, logout e emissão de tokens
type AuthHandler struct {
	authService *services.AuthService
	sessions    *middleware.SessionManager
	tokens      ports.TokenIssuer
	flash       flasher
	logger      ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(
	authService *services.AuthService,
	sessions *middleware.SessionManager,
	tokens ports.TokenIssuer,
	logger ports.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		tokens:      tokens,
		flash:       flasher{sessions: sessions, logger: logger},
		logger:      logger,
	}
}

// LoginForm descreve o formulário de login genérico
func (h *AuthHandler) LoginForm(c *gin.Context) {
	form(c, "form.login.titulo", "form.botao.entrar", nil)
}

// Login autentica sem validar perfil
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bind(c, &req) {
		return
	}

	user, err := h.authService.Authenticate(loginContext(c), req.Username, req.Password)
	if err != nil {
		if isLoginRejection(err) {
			h.flash.redirect(c, middleware.LoginPath, err.Error())
			return
		}
		RespondError(c, h.logger, "usuário", err)
		return
	}

	if err := h.sessions.Login(c, user.ID); err != nil {
		RespondError(c, h.logger, "usuário", err)
		return
	}
	c.Redirect(http.StatusSeeOther, safeNext(req.Next))
}

// RoleLoginForm descreve o login de um perfil; quem já está logado segue para as sessões
func (h *AuthHandler) RoleLoginForm(c *gin.Context) {
	profile, ok := entities.ParseProfile(c.Param("profile"))
	if !ok {
		h.flash.redirectWithStatus(c, http.StatusFound, "/", domainerrors.ErrInvalidLoginProfile.Error())
		return
	}

	if middleware.GetActor(c).IsAuthenticated() {
		c.Redirect(http.StatusFound, defaultLoginRedirect)
		return
	}

	form(c, "form.login."+string(profile)+".titulo", "form.botao.entrar", nil)
}

// RoleLogin autentica e exige que o usuário pertença somente ao grupo do perfil.
// Rejeições revogam a sessão e redirecionam com a mensagem do motivo.
// O login autorizado sempre segue para a lista de sessões, ignorando next.
func (h *AuthHandler) RoleLogin(c *gin.Context) {
	profile, ok := entities.ParseProfile(c.Param("profile"))
	if !ok {
		h.logger.Info("login rejected", "state", services.LoginRejectedBadRole.String())
		h.flash.redirect(c, "/", domainerrors.ErrInvalidLoginProfile.Error())
		return
	}

	var req dto.LoginRequest
	if !bind(c, &req) {
		return
	}

	user, err := h.authService.Authenticate(loginContext(c), req.Username, req.Password)
	if err != nil {
		if isLoginRejection(err) {
			h.flash.redirect(c, profile.LoginPath(), err.Error())
			return
		}
		RespondError(c, h.logger, "usuário", err)
		return
	}

	state, err := h.authService.CheckRole(user, profile)
	if err != nil {
		h.logger.Info("login rejected", "user_id", user.ID, "profile", profile, "state", state.String())
		if logoutErr := h.sessions.Logout(c); logoutErr != nil {
			h.logger.Warn("failed to revoke session", "error", logoutErr)
		}

		var wrongRole *domainerrors.WrongRoleError
		if errors.As(err, &wrongRole) {
			h.flash.redirect(c, profile.LoginPath(), domainerrors.ErrWrongRole.Error(),
				map[string]interface{}{"Group": wrongRole.Required})
			return
		}
		h.flash.redirect(c, middleware.LoginPath, err.Error())
		return
	}

	if err := h.sessions.Login(c, user.ID); err != nil {
		RespondError(c, h.logger, "usuário", err)
		return
	}
	h.logger.Info("login authorized", "user_id", user.ID, "profile", profile)
	c.Redirect(http.StatusSeeOther, defaultLoginRedirect)
}

// Logout encerra a sessão
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c); err != nil {
		h.logger.Warn("failed to revoke session", "error", err)
	}
	h.flash.redirectWithStatus(c, http.StatusFound, "/", "flash.logout")
}

// IssueToken executa o login com perfil e devolve um token Bearer
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, state, err := h.authService.Login(loginContext(c), req.Profile, req.Username, req.Password)
	if err != nil {
		h.logger.Info("token login rejected", "profile", req.Profile, "state", state.String())
		RespondError(c, h.logger, "usuário", err)
		return
	}

	token, expiresAt, err := h.tokens.Issue(user.ID)
	if err != nil {
		RespondError(c, h.logger, "usuário", err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Usuario:     dto.ToActorResponse(access.ActorFromUser(user)),
	})
}

// loginContext leva o IP do cliente para a contagem de tentativas
func loginContext(c *gin.Context) context.Context {
	return services.WithClientIP(c.Request.Context(), c.ClientIP())
}

func isLoginRejection(err error) bool {
	return errors.Is(err, domainerrors.ErrInvalidCredentials) || errors.Is(err, domainerrors.ErrTooManyAttempts)
}

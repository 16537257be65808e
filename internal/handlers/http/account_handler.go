package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/handlers/dto"
	"github.com/rafabene/agendafoto-backend/internal/handlers/middleware"
	"github.com/rafabene/agendafoto-backend/internal/services"
)

// AccountHandler lida com cadastro de usuários e troca de senha
type AccountHandler struct {
	registrationService *services.RegistrationService
	userService         *services.UserService
	sessions            *middleware.SessionManager
	flash               flasher
	logger              ports.Logger
}

// NewAccountHandler cria um novo AccountHandler
func NewAccountHandler(
	registrationService *services.RegistrationService,
	userService *services.UserService,
	sessions *middleware.SessionManager,
	logger ports.Logger,
) *AccountHandler {
	return &AccountHandler{
		registrationService: registrationService,
		userService:         userService,
		sessions:            sessions,
		flash:               flasher{sessions: sessions, logger: logger},
		logger:              logger,
	}
}

// RegisterForm descreve o cadastro público de um perfil
func (h *AccountHandler) RegisterForm(c *gin.Context) {
	profile, ok := entities.ParseProfile(c.Param("profile"))
	if !ok {
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "perfil"))
		return
	}
	form(c, "form.usuario."+string(profile)+".titulo", "form.botao.cadastrar", nil)
}

// Register cria usuário, grupo e perfil numa única transação
func (h *AccountHandler) Register(c *gin.Context) {
	profile, ok := entities.ParseProfile(c.Param("profile"))
	if !ok {
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, "perfil"))
		return
	}

	var req dto.RegisterRequest
	if !bind(c, &req) {
		return
	}

	if _, err := h.registrationService.Register(c.Request.Context(), profile, req.ToInput()); err != nil {
		RespondError(c, h.logger, "usuário", err)
		return
	}

	h.flash.redirect(c, profile.LoginPath(), "flash.registered."+string(profile))
}

// PasswordForm descreve a troca de senha
func (h *AccountHandler) PasswordForm(c *gin.Context) {
	form(c, "form.senha.titulo", "form.botao.salvar", nil)
}

// ChangePassword troca a senha do usuário logado
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !bind(c, &req) {
		return
	}

	actor := middleware.GetActor(c)
	if err := h.userService.ChangePassword(c.Request.Context(), actor.UserID, req.ToInput()); err != nil {
		RespondError(c, h.logger, "usuário", err)
		return
	}

	h.flash.redirect(c, "/senha/ok", "flash.password_changed")
}

// PasswordDone confirma a troca exibindo as mensagens pendentes
func (h *AccountHandler) PasswordDone(c *gin.Context) {
	home(c, h.sessions, h.logger)
}

// home responde o usuário logado e consome as mensagens flash
func home(c *gin.Context, sessions *middleware.SessionManager, logger ports.Logger) {
	messages, err := sessions.Flashes(c)
	if err != nil {
		logger.Warn("failed to read flash messages", "error", err)
	}
	if messages == nil {
		messages = []string{}
	}

	c.JSON(http.StatusOK, dto.HomeResponse{
		Usuario:   dto.ToActorResponse(middleware.GetActor(c)),
		Mensagens: messages,
	})
}

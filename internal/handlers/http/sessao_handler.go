package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/handlers/dto"
	"github.com/rafabene/agendafoto-backend/internal/handlers/middleware"
	"github.com/rafabene/agendafoto-backend/internal/services"
	"github.com/rafabene/agendafoto-backend/internal/services/access"
)

const (
	sessaoResource = "sessão"
	sessaoListPath = "/listar/sessoes"
)

// SessaoHandler lida com requisições HTTP de sessões
type SessaoHandler struct {
	sessaoService *services.SessaoService
	access        *access.Controller
	flash         flasher
	logger        ports.Logger
}

// NewSessaoHandler cria um novo SessaoHandler
func NewSessaoHandler(
	sessaoService *services.SessaoService,
	controller *access.Controller,
	sessions *middleware.SessionManager,
	logger ports.Logger,
) *SessaoHandler {
	return &SessaoHandler{
		sessaoService: sessaoService,
		access:        controller,
		flash:         flasher{sessions: sessions, logger: logger},
		logger:        logger,
	}
}

// List lista sessões visíveis para o usuário
func (h *SessaoHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !bindQuery(c, &query) {
		return
	}

	filters := query.SessaoFilters()
	items, err := h.sessaoService.List(c.Request.Context(), middleware.GetActor(c), filters)
	if err != nil {
		RespondError(c, h.logger, sessaoResource, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, filters.ListFilters, dto.ToSessaoResponse))
}

// CreateForm descreve o formulário de cadastro
func (h *SessaoHandler) CreateForm(c *gin.Context) {
	if err := h.access.Authorize(middleware.GetActor(c), access.ResourceSessao, access.OpCreate); err != nil {
		RespondError(c, h.logger, sessaoResource, err)
		return
	}
	form(c, "form.sessao.cadastrar", "form.botao.cadastrar", nil)
}

// Create cadastra uma sessão em nome do usuário logado
func (h *SessaoHandler) Create(c *gin.Context) {
	var req dto.SessaoRequest
	if !bind(c, &req) {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		RespondError(c, h.logger, sessaoResource, err)
		return
	}

	if _, err := h.sessaoService.Create(c.Request.Context(), middleware.GetActor(c), input); err != nil {
		RespondError(c, h.logger, sessaoResource, err)
		return
	}

	h.flash.redirect(c, sessaoListPath, "flash.created")
}

// EditForm descreve a edição com os dados atuais
func (h *SessaoHandler) EditForm(c *gin.Context) {
	h.objectForm(c, access.OpUpdate, "form.sessao.editar", "form.botao.salvar")
}

// Update altera uma sessão do escopo do usuário
func (h *SessaoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", sessaoResource)
	if !ok {
		return
	}

	var req dto.SessaoRequest
	if !bind(c, &req) {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		RespondError(c, h.logger, sessaoResource, err)
		return
	}

	if _, err := h.sessaoService.Update(c.Request.Context(), middleware.GetActor(c), id, input); err != nil {
		RespondError(c, h.logger, sessaoResource, err)
		return
	}

	h.flash.redirect(c, sessaoListPath, "flash.updated")
}

// DeleteForm pede confirmação da exclusão
func (h *SessaoHandler) DeleteForm(c *gin.Context) {
	h.objectForm(c, access.OpDelete, "form.sessao.excluir", "form.botao.excluir")
}

// Delete exclui uma sessão do escopo do usuário
func (h *SessaoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", sessaoResource)
	if !ok {
		return
	}

	if err := h.sessaoService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		RespondError(c, h.logger, sessaoResource, err)
		return
	}

	h.flash.redirect(c, sessaoListPath, "flash.deleted")
}

func (h *SessaoHandler) objectForm(c *gin.Context, op access.Operation, tituloKey, botaoKey string) {
	id, ok := parseID(c, "id", sessaoResource)
	if !ok {
		return
	}

	actor := middleware.GetActor(c)
	obj, err := h.sessaoService.Get(c.Request.Context(), actor, id)
	if err == nil {
		err = h.access.Authorize(actor, access.ResourceSessao, op, obj)
	}
	if err != nil {
		RespondError(c, h.logger, sessaoResource, err)
		return
	}

	form(c, tituloKey, botaoKey, dto.ToSessaoResponse(obj))
}

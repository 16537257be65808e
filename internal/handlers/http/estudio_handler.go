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
	estudioResource = "estúdio"
	estudioListPath = "/listar/estudios"
)

// EstudioHandler lida com requisições HTTP de estúdios
type EstudioHandler struct {
	estudioService *services.EstudioService
	access         *access.Controller
	flash          flasher
	logger         ports.Logger
}

// NewEstudioHandler cria um novo EstudioHandler
func NewEstudioHandler(
	estudioService *services.EstudioService,
	controller *access.Controller,
	sessions *middleware.SessionManager,
	logger ports.Logger,
) *EstudioHandler {
	return &EstudioHandler{
		estudioService: estudioService,
		access:         controller,
		flash:          flasher{sessions: sessions, logger: logger},
		logger:         logger,
	}
}

// List lista estúdios visíveis para o usuário
func (h *EstudioHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !bindQuery(c, &query) {
		return
	}

	filters := query.Filters()
	items, err := h.estudioService.List(c.Request.Context(), middleware.GetActor(c), filters)
	if err != nil {
		RespondError(c, h.logger, estudioResource, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, filters, dto.ToEstudioResponse))
}

// CreateForm descreve o formulário de cadastro
func (h *EstudioHandler) CreateForm(c *gin.Context) {
	if err := h.access.Authorize(middleware.GetActor(c), access.ResourceEstudio, access.OpCreate); err != nil {
		RespondError(c, h.logger, estudioResource, err)
		return
	}
	form(c, "form.estudio.cadastrar", "form.botao.cadastrar", nil)
}

// Create cadastra um estúdio em nome do usuário logado
func (h *EstudioHandler) Create(c *gin.Context) {
	var req dto.EstudioRequest
	if !bind(c, &req) {
		return
	}
	input := req.ToInput()

	if _, err := h.estudioService.Create(c.Request.Context(), middleware.GetActor(c), input); err != nil {
		RespondError(c, h.logger, estudioResource, err)
		return
	}

	h.flash.redirect(c, estudioListPath, "flash.created")
}

// EditForm descreve a edição com os dados atuais
func (h *EstudioHandler) EditForm(c *gin.Context) {
	h.objectForm(c, access.OpUpdate, "form.estudio.editar", "form.botao.salvar")
}

// Update altera um estúdio do escopo do usuário
func (h *EstudioHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", estudioResource)
	if !ok {
		return
	}

	var req dto.EstudioRequest
	if !bind(c, &req) {
		return
	}
	input := req.ToInput()

	if _, err := h.estudioService.Update(c.Request.Context(), middleware.GetActor(c), id, input); err != nil {
		RespondError(c, h.logger, estudioResource, err)
		return
	}

	h.flash.redirect(c, estudioListPath, "flash.updated")
}

// DeleteForm pede confirmação da exclusão
func (h *EstudioHandler) DeleteForm(c *gin.Context) {
	h.objectForm(c, access.OpDelete, "form.estudio.excluir", "form.botao.excluir")
}

// Delete exclui um estúdio do escopo do usuário
func (h *EstudioHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", estudioResource)
	if !ok {
		return
	}

	if err := h.estudioService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		RespondError(c, h.logger, estudioResource, err)
		return
	}

	h.flash.redirect(c, estudioListPath, "flash.deleted")
}

func (h *EstudioHandler) objectForm(c *gin.Context, op access.Operation, tituloKey, botaoKey string) {
	id, ok := parseID(c, "id", estudioResource)
	if !ok {
		return
	}

	actor := middleware.GetActor(c)
	obj, err := h.estudioService.Get(c.Request.Context(), actor, id)
	if err == nil {
		err = h.access.Authorize(actor, access.ResourceEstudio, op, obj)
	}
	if err != nil {
		RespondError(c, h.logger, estudioResource, err)
		return
	}

	form(c, tituloKey, botaoKey, dto.ToEstudioResponse(obj))
}

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
	fotografoResource = "fotógrafo"
	fotografoListPath = "/listar/fotografos"
)

// FotografoHandler lida com requisições HTTP de fotógrafos
type FotografoHandler struct {
	fotografoService *services.FotografoService
	access           *access.Controller
	flash            flasher
	logger           ports.Logger
}

// NewFotografoHandler cria um novo FotografoHandler
func NewFotografoHandler(
	fotografoService *services.FotografoService,
	controller *access.Controller,
	sessions *middleware.SessionManager,
	logger ports.Logger,
) *FotografoHandler {
	return &FotografoHandler{
		fotografoService: fotografoService,
		access:           controller,
		flash:            flasher{sessions: sessions, logger: logger},
		logger:           logger,
	}
}

// List lista fotógrafos visíveis para o usuário
func (h *FotografoHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !bindQuery(c, &query) {
		return
	}

	filters := query.Filters()
	items, err := h.fotografoService.List(c.Request.Context(), middleware.GetActor(c), filters)
	if err != nil {
		RespondError(c, h.logger, fotografoResource, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, filters, dto.ToFotografoResponse))
}

// CreateForm descreve o formulário de cadastro
func (h *FotografoHandler) CreateForm(c *gin.Context) {
	if err := h.access.Authorize(middleware.GetActor(c), access.ResourceFotografo, access.OpCreate); err != nil {
		RespondError(c, h.logger, fotografoResource, err)
		return
	}
	form(c, "form.fotografo.cadastrar", "form.botao.cadastrar", nil)
}

// Create cadastra um fotógrafo em nome do usuário logado
func (h *FotografoHandler) Create(c *gin.Context) {
	var req dto.FotografoRequest
	if !bind(c, &req) {
		return
	}
	input := req.ToInput()

	if _, err := h.fotografoService.Create(c.Request.Context(), middleware.GetActor(c), input); err != nil {
		RespondError(c, h.logger, fotografoResource, err)
		return
	}

	h.flash.redirect(c, fotografoListPath, "flash.created")
}

// EditForm descreve a edição com os dados atuais
func (h *FotografoHandler) EditForm(c *gin.Context) {
	h.objectForm(c, access.OpUpdate, "form.fotografo.editar", "form.botao.salvar")
}

// Update altera um fotógrafo do escopo do usuário
func (h *FotografoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", fotografoResource)
	if !ok {
		return
	}

	var req dto.FotografoRequest
	if !bind(c, &req) {
		return
	}
	input := req.ToInput()

	if _, err := h.fotografoService.Update(c.Request.Context(), middleware.GetActor(c), id, input); err != nil {
		RespondError(c, h.logger, fotografoResource, err)
		return
	}

	h.flash.redirect(c, fotografoListPath, "flash.updated")
}

// DeleteForm pede confirmação da exclusão
func (h *FotografoHandler) DeleteForm(c *gin.Context) {
	h.objectForm(c, access.OpDelete, "form.fotografo.excluir", "form.botao.excluir")
}

// Delete exclui um fotógrafo do escopo do usuário
func (h *FotografoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", fotografoResource)
	if !ok {
		return
	}

	if err := h.fotografoService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		RespondError(c, h.logger, fotografoResource, err)
		return
	}

	h.flash.redirect(c, fotografoListPath, "flash.deleted")
}

func (h *FotografoHandler) objectForm(c *gin.Context, op access.Operation, tituloKey, botaoKey string) {
	id, ok := parseID(c, "id", fotografoResource)
	if !ok {
		return
	}

	actor := middleware.GetActor(c)
	obj, err := h.fotografoService.Get(c.Request.Context(), actor, id)
	if err == nil {
		err = h.access.Authorize(actor, access.ResourceFotografo, op, obj)
	}
	if err != nil {
		RespondError(c, h.logger, fotografoResource, err)
		return
	}

	form(c, tituloKey, botaoKey, dto.ToFotografoResponse(obj))
}

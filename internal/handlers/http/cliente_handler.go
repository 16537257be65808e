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
	clienteResource = "cliente"
	clienteListPath = "/listar/clientes"
)

// ClienteHandler lida com requisições HTTP de clientes
type ClienteHandler struct {
	clienteService *services.ClienteService
	access         *access.Controller
	flash          flasher
	logger         ports.Logger
}

// NewClienteHandler cria um novo ClienteHandler
func NewClienteHandler(
	clienteService *services.ClienteService,
	controller *access.Controller,
	sessions *middleware.SessionManager,
	logger ports.Logger,
) *ClienteHandler {
	return &ClienteHandler{
		clienteService: clienteService,
		access:         controller,
		flash:          flasher{sessions: sessions, logger: logger},
		logger:         logger,
	}
}

// List lista clientes visíveis para o usuário
func (h *ClienteHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !bindQuery(c, &query) {
		return
	}

	filters := query.Filters()
	items, err := h.clienteService.List(c.Request.Context(), middleware.GetActor(c), filters)
	if err != nil {
		RespondError(c, h.logger, clienteResource, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, filters, dto.ToClienteResponse))
}

// CreateForm descreve o formulário de cadastro
func (h *ClienteHandler) CreateForm(c *gin.Context) {
	if err := h.access.Authorize(middleware.GetActor(c), access.ResourceCliente, access.OpCreate); err != nil {
		RespondError(c, h.logger, clienteResource, err)
		return
	}
	form(c, "form.cliente.cadastrar", "form.botao.cadastrar", nil)
}

// Create cadastra um cliente em nome do usuário logado
func (h *ClienteHandler) Create(c *gin.Context) {
	var req dto.ClienteRequest
	if !bind(c, &req) {
		return
	}
	input := req.ToInput()

	if _, err := h.clienteService.Create(c.Request.Context(), middleware.GetActor(c), input); err != nil {
		RespondError(c, h.logger, clienteResource, err)
		return
	}

	h.flash.redirect(c, clienteListPath, "flash.created")
}

// EditForm descreve a edição com os dados atuais
func (h *ClienteHandler) EditForm(c *gin.Context) {
	h.objectForm(c, access.OpUpdate, "form.cliente.editar", "form.botao.salvar")
}

// Update altera um cliente do escopo do usuário
func (h *ClienteHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", clienteResource)
	if !ok {
		return
	}

	var req dto.ClienteRequest
	if !bind(c, &req) {
		return
	}
	input := req.ToInput()

	if _, err := h.clienteService.Update(c.Request.Context(), middleware.GetActor(c), id, input); err != nil {
		RespondError(c, h.logger, clienteResource, err)
		return
	}

	h.flash.redirect(c, clienteListPath, "flash.updated")
}

// DeleteForm pede confirmação da exclusão
func (h *ClienteHandler) DeleteForm(c *gin.Context) {
	h.objectForm(c, access.OpDelete, "form.cliente.excluir", "form.botao.excluir")
}

// Delete exclui um cliente do escopo do usuário
func (h *ClienteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", clienteResource)
	if !ok {
		return
	}

	if err := h.clienteService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		RespondError(c, h.logger, clienteResource, err)
		return
	}

	h.flash.redirect(c, clienteListPath, "flash.deleted")
}

func (h *ClienteHandler) objectForm(c *gin.Context, op access.Operation, tituloKey, botaoKey string) {
	id, ok := parseID(c, "id", clienteResource)
	if !ok {
		return
	}

	actor := middleware.GetActor(c)
	obj, err := h.clienteService.Get(c.Request.Context(), actor, id)
	if err == nil {
		err = h.access.Authorize(actor, access.ResourceCliente, op, obj)
	}
	if err != nil {
		RespondError(c, h.logger, clienteResource, err)
		return
	}

	form(c, tituloKey, botaoKey, dto.ToClienteResponse(obj))
}

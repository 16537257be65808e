package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/handlers/dto"
	"github.com/rafabene/agendafoto-backend/internal/handlers/middleware"
	"github.com/rafabene/agendafoto-backend/internal/services"
	"github.com/rafabene/agendafoto-backend/internal/services/access"
)

const portfolioResource = "portfólio"

// PortfolioHandler lida com os links de fotos do portfólio de um fotógrafo
type PortfolioHandler struct {
	portfolioService *services.PortfolioService
	access           *access.Controller
	flash            flasher
	logger           ports.Logger
}

// NewPortfolioHandler cria um novo PortfolioHandler
func NewPortfolioHandler(
	portfolioService *services.PortfolioService,
	controller *access.Controller,
	sessions *middleware.SessionManager,
	logger ports.Logger,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		access:           controller,
		flash:            flasher{sessions: sessions, logger: logger},
		logger:           logger,
	}
}

func portfolioPath(fotografoID uint) string {
	return fmt.Sprintf("/listar/portfolio/%d", fotografoID)
}

// List lista as fotos de um fotógrafo do próprio usuário
func (h *PortfolioHandler) List(c *gin.Context) {
	fotografoID, ok := parseID(c, "fotografo_id", "fotógrafo")
	if !ok {
		return
	}

	var query dto.ListQuery
	if !bindQuery(c, &query) {
		return
	}

	filters := query.Filters()
	items, err := h.portfolioService.List(c.Request.Context(), middleware.GetActor(c), fotografoID, filters)
	if err != nil {
		RespondError(c, h.logger, "fotógrafo", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, filters, dto.ToPortfolioItemResponse))
}

// Create adiciona um link de foto
func (h *PortfolioHandler) Create(c *gin.Context) {
	fotografoID, ok := parseID(c, "fotografo_id", "fotógrafo")
	if !ok {
		return
	}

	var req dto.PortfolioRequest
	if !bind(c, &req) {
		return
	}

	if _, err := h.portfolioService.Create(c.Request.Context(), middleware.GetActor(c), fotografoID, req.ToInput()); err != nil {
		RespondError(c, h.logger, "fotógrafo", err)
		return
	}

	h.flash.redirect(c, portfolioPath(fotografoID), "flash.created")
}

// DeleteForm pede confirmação da remoção
func (h *PortfolioHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c, "id", portfolioResource)
	if !ok {
		return
	}

	actor := middleware.GetActor(c)
	item, err := h.portfolioService.Get(c.Request.Context(), actor, id)
	if err == nil {
		err = h.access.Authorize(actor, access.ResourcePortfolio, access.OpDelete)
	}
	if err != nil {
		RespondError(c, h.logger, portfolioResource, err)
		return
	}

	form(c, "form.portfolio.excluir", "form.botao.excluir", dto.ToPortfolioItemResponse(item))
}

// Delete remove o link e volta ao portfólio do fotógrafo
func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", portfolioResource)
	if !ok {
		return
	}

	item, err := h.portfolioService.Delete(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		RespondError(c, h.logger, portfolioResource, err)
		return
	}

	h.flash.redirect(c, portfolioPath(item.FotografoID), "flash.deleted")
}

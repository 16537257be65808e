package services

import (
	"context"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/services/access"
)

// PortfolioService gerencia os links de fotos do fotógrafo
type PortfolioService struct {
	portfolioRepo repositories.PortfolioRepository
	fotografoRepo repositories.FotografoRepository
	access        *access.Controller
	logger        ports.Logger
}

// NewPortfolioService cria um novo PortfolioService
func NewPortfolioService(
	portfolioRepo repositories.PortfolioRepository,
	fotografoRepo repositories.FotografoRepository,
	controller *access.Controller,
	logger ports.Logger,
) *PortfolioService {
	return &PortfolioService{
		portfolioRepo: portfolioRepo,
		fotografoRepo: fotografoRepo,
		access:        controller,
		logger:        logger,
	}
}

// PortfolioInput representa um novo link de foto
type PortfolioInput struct {
	FotoURL   string
	Descricao string
}

// List retorna o portfólio de um fotógrafo do próprio ator
func (s *PortfolioService) List(ctx context.Context, actor access.Actor, fotografoID uint, filters repositories.ListFilters) ([]*entities.PortfolioItem, error) {
	fotografo, err := s.owner(ctx, actor, access.OpList, fotografoID)
	if err != nil {
		return nil, err
	}
	return s.portfolioRepo.ListByFotografo(ctx, fotografo.ID, filters)
}

// Create adiciona um link ao portfólio do fotógrafo
func (s *PortfolioService) Create(ctx context.Context, actor access.Actor, fotografoID uint, input PortfolioInput) (*entities.PortfolioItem, error) {
	fotografo, err := s.owner(ctx, actor, access.OpCreate, fotografoID)
	if err != nil {
		return nil, err
	}

	item := &entities.PortfolioItem{
		FotografoID: fotografo.ID,
		FotoURL:     input.FotoURL,
		Descricao:   input.Descricao,
	}
	if err := toValidationError(item.Validate()); err != nil {
		return nil, err
	}

	if err := s.portfolioRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("portfolio item created", "item_id", item.ID, "fotografo_id", fotografo.ID)
	return item, nil
}

// Get busca um item cujo fotógrafo pertence ao ator
func (s *PortfolioService) Get(ctx context.Context, actor access.Actor, itemID uint) (*entities.PortfolioItem, error) {
	return s.load(ctx, actor, access.OpRead, itemID)
}

// Delete remove um item do portfólio do ator
func (s *PortfolioService) Delete(ctx context.Context, actor access.Actor, itemID uint) (*entities.PortfolioItem, error) {
	item, err := s.load(ctx, actor, access.OpDelete, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.portfolioRepo.Delete(ctx, item.ID); err != nil {
		return nil, err
	}

	s.logger.Info("portfolio item deleted", "item_id", item.ID, "fotografo_id", item.FotografoID)
	return item, nil
}

func (s *PortfolioService) load(ctx context.Context, actor access.Actor, op access.Operation, itemID uint) (*entities.PortfolioItem, error) {
	if err := s.access.Authorize(actor, access.ResourcePortfolio, op); err != nil {
		return nil, err
	}

	item, err := s.portfolioRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domainerrors.ErrNotFound
	}

	if _, err := s.owner(ctx, actor, op, item.FotografoID); err != nil {
		return nil, err
	}
	return item, nil
}

// owner carrega o fotógrafo dono do portfólio dentro do escopo do ator
func (s *PortfolioService) owner(ctx context.Context, actor access.Actor, op access.Operation, fotografoID uint) (*entities.Fotografo, error) {
	if err := s.access.Authorize(actor, access.ResourcePortfolio, op); err != nil {
		return nil, err
	}
	scope, err := s.access.Scope(actor, access.ResourcePortfolio)
	if err != nil {
		return nil, err
	}

	fotografo, err := s.fotografoRepo.FindByID(ctx, fotografoID, scope)
	if err != nil {
		return nil, err
	}
	if fotografo == nil {
		return nil, domainerrors.ErrNotFound
	}
	return fotografo, nil
}

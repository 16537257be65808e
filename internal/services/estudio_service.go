package services

import (
	"context"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/services/access"
)

// EstudioService contém a lógica de negócio para estúdios
type EstudioService struct {
	estudioRepo repositories.EstudioRepository
	access      *access.Controller
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewEstudioService cria um novo EstudioService
func NewEstudioService(
	estudioRepo repositories.EstudioRepository,
	controller *access.Controller,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *EstudioService {
	return &EstudioService{
		estudioRepo: estudioRepo,
		access:      controller,
		uow:         uow,
		logger:      logger,
	}
}

// EstudioInput representa os campos editáveis de um estúdio
type EstudioInput struct {
	Nome     string
	Endereco string
	Telefone string
}

func (s *EstudioService) List(ctx context.Context, actor access.Actor, filters repositories.ListFilters) ([]*entities.Estudio, error) {
	if err := s.access.Authorize(actor, access.ResourceEstudio, access.OpList); err != nil {
		return nil, err
	}
	scope, err := s.access.Scope(actor, access.ResourceEstudio)
	if err != nil {
		return nil, err
	}
	return s.estudioRepo.List(ctx, scope, filters)
}

func (s *EstudioService) Get(ctx context.Context, actor access.Actor, id uint) (*entities.Estudio, error) {
	return s.load(ctx, actor, access.OpRead, id)
}

func (s *EstudioService) Create(ctx context.Context, actor access.Actor, input EstudioInput) (*entities.Estudio, error) {
	if err := s.access.Authorize(actor, access.ResourceEstudio, access.OpCreate); err != nil {
		return nil, err
	}

	estudio := &entities.Estudio{
		Nome:            input.Nome,
		Endereco:        input.Endereco,
		Telefone:        input.Telefone,
		CadastradoPorID: actor.UserID,
	}
	if err := toValidationError(estudio.Validate()); err != nil {
		return nil, err
	}

	if err := s.estudioRepo.Create(ctx, estudio); err != nil {
		return nil, err
	}

	s.logger.Info("estudio created", "estudio_id", estudio.ID, "user_id", actor.UserID)
	return estudio, nil
}

func (s *EstudioService) Update(ctx context.Context, actor access.Actor, id uint, input EstudioInput) (*entities.Estudio, error) {
	estudio, err := s.load(ctx, actor, access.OpUpdate, id)
	if err != nil {
		return nil, err
	}

	estudio.Nome = input.Nome
	estudio.Endereco = input.Endereco
	estudio.Telefone = input.Telefone
	if err := toValidationError(estudio.Validate()); err != nil {
		return nil, err
	}

	if err := s.estudioRepo.Update(ctx, estudio); err != nil {
		return nil, err
	}
	return estudio, nil
}

// Delete exclui o estúdio; sessões que o usavam ficam sem estúdio
func (s *EstudioService) Delete(ctx context.Context, actor access.Actor, id uint) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		estudio, err := s.load(txCtx, actor, access.OpDelete, id)
		if err != nil {
			return err
		}
		if err := s.estudioRepo.Delete(txCtx, estudio.ID); err != nil {
			return err
		}

		s.logger.Info("estudio deleted", "estudio_id", estudio.ID, "user_id", actor.UserID)
		return nil
	})
}

func (s *EstudioService) load(ctx context.Context, actor access.Actor, op access.Operation, id uint) (*entities.Estudio, error) {
	if err := s.access.Authorize(actor, access.ResourceEstudio, op); err != nil {
		return nil, err
	}
	scope, err := s.access.Scope(actor, access.ResourceEstudio)
	if err != nil {
		return nil, err
	}

	estudio, err := s.estudioRepo.FindByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if estudio == nil {
		return nil, domainerrors.ErrNotFound
	}
	return estudio, nil
}

package services

import (
	"context"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/services/access"
)

// FotografoService contém a lógica de negócio para fotógrafos
type FotografoService struct {
	fotografoRepo repositories.FotografoRepository
	sessaoRepo    repositories.SessaoRepository
	access        *access.Controller
	uow           ports.UnitOfWork
	logger        ports.Logger
}

// NewFotografoService cria um novo FotografoService
func NewFotografoService(
	fotografoRepo repositories.FotografoRepository,
	sessaoRepo repositories.SessaoRepository,
	controller *access.Controller,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *FotografoService {
	return &FotografoService{
		fotografoRepo: fotografoRepo,
		sessaoRepo:    sessaoRepo,
		access:        controller,
		uow:           uow,
		logger:        logger,
	}
}

// FotografoInput representa os campos editáveis de um fotógrafo
type FotografoInput struct {
	Nome          string
	Especialidade string
	Telefone      string
	FotoPerfil    string
}

func (s *FotografoService) List(ctx context.Context, actor access.Actor, filters repositories.ListFilters) ([]*entities.Fotografo, error) {
	if err := s.access.Authorize(actor, access.ResourceFotografo, access.OpList); err != nil {
		return nil, err
	}
	scope, err := s.access.Scope(actor, access.ResourceFotografo)
	if err != nil {
		return nil, err
	}
	return s.fotografoRepo.List(ctx, scope, filters)
}

func (s *FotografoService) Get(ctx context.Context, actor access.Actor, id uint) (*entities.Fotografo, error) {
	return s.load(ctx, actor, access.OpRead, id)
}

// Create cria o perfil de fotógrafo do próprio ator
func (s *FotografoService) Create(ctx context.Context, actor access.Actor, input FotografoInput) (*entities.Fotografo, error) {
	if err := s.access.Authorize(actor, access.ResourceFotografo, access.OpCreate); err != nil {
		return nil, err
	}

	fotografo := &entities.Fotografo{UserID: actor.UserID}
	applyFotografoInput(fotografo, input)
	if err := toValidationError(fotografo.Validate()); err != nil {
		return nil, err
	}

	if err := s.fotografoRepo.Create(ctx, fotografo); err != nil {
		return nil, err
	}

	s.logger.Info("fotografo created", "fotografo_id", fotografo.ID, "user_id", actor.UserID)
	return fotografo, nil
}

func (s *FotografoService) Update(ctx context.Context, actor access.Actor, id uint, input FotografoInput) (*entities.Fotografo, error) {
	fotografo, err := s.load(ctx, actor, access.OpUpdate, id)
	if err != nil {
		return nil, err
	}

	applyFotografoInput(fotografo, input)
	if err := toValidationError(fotografo.Validate()); err != nil {
		return nil, err
	}

	if err := s.fotografoRepo.Update(ctx, fotografo); err != nil {
		return nil, err
	}

	s.logger.Info("fotografo updated", "fotografo_id", fotografo.ID, "user_id", actor.UserID)
	return fotografo, nil
}

// Delete exclui o fotógrafo se nenhuma sessão o referencia
func (s *FotografoService) Delete(ctx context.Context, actor access.Actor, id uint) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		fotografo, err := s.load(txCtx, actor, access.OpDelete, id)
		if err != nil {
			return err
		}

		count, err := s.sessaoRepo.CountByFotografo(txCtx, fotografo.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return &domainerrors.ProtectedError{Resource: "fotografo", ReferencedBy: "sessoes", Count: count}
		}

		if err := s.fotografoRepo.Delete(txCtx, fotografo.ID); err != nil {
			return err
		}

		s.logger.Info("fotografo deleted", "fotografo_id", fotografo.ID, "user_id", actor.UserID)
		return nil
	})
}

func (s *FotografoService) load(ctx context.Context, actor access.Actor, op access.Operation, id uint) (*entities.Fotografo, error) {
	if err := s.access.Authorize(actor, access.ResourceFotografo, op); err != nil {
		return nil, err
	}
	scope, err := s.access.Scope(actor, access.ResourceFotografo)
	if err != nil {
		return nil, err
	}

	fotografo, err := s.fotografoRepo.FindByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if fotografo == nil {
		return nil, domainerrors.ErrNotFound
	}
	return fotografo, nil
}

func applyFotografoInput(f *entities.Fotografo, input FotografoInput) {
	f.Nome = input.Nome
	f.Especialidade = input.Especialidade
	f.Telefone = input.Telefone
	f.FotoPerfil = input.FotoPerfil
}

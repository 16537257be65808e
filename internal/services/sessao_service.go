package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/services/access"
)

// SessaoService contém a lógica de negócio para sessões de fotos
type SessaoService struct {
	sessaoRepo    repositories.SessaoRepository
	clienteRepo   repositories.ClienteRepository
	fotografoRepo repositories.FotografoRepository
	estudioRepo   repositories.EstudioRepository
	access        *access.Controller
	uow           ports.UnitOfWork
	logger        ports.Logger
}

// NewSessaoService cria um novo SessaoService
func NewSessaoService(
	sessaoRepo repositories.SessaoRepository,
	clienteRepo repositories.ClienteRepository,
	fotografoRepo repositories.FotografoRepository,
	estudioRepo repositories.EstudioRepository,
	controller *access.Controller,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *SessaoService {
	return &SessaoService{
		sessaoRepo:    sessaoRepo,
		clienteRepo:   clienteRepo,
		fotografoRepo: fotografoRepo,
		estudioRepo:   estudioRepo,
		access:        controller,
		uow:           uow,
		logger:        logger,
	}
}

// SessaoInput representa os campos editáveis de uma sessão
type SessaoInput struct {
	Data        time.Time
	Horario     string
	Duracao     int
	Tipo        string
	Valor       decimal.Decimal
	Finalizado  bool
	ClienteID   uint
	FotografoID uint
	EstudioID   *uint
}

// List retorna as sessões cadastradas pelo ator
func (s *SessaoService) List(ctx context.Context, actor access.Actor, filters repositories.SessaoFilters) ([]*entities.Sessao, error) {
	if err := s.access.Authorize(actor, access.ResourceSessao, access.OpList); err != nil {
		return nil, err
	}
	scope, err := s.access.Scope(actor, access.ResourceSessao)
	if err != nil {
		return nil, err
	}
	return s.sessaoRepo.List(ctx, scope, filters)
}

func (s *SessaoService) Get(ctx context.Context, actor access.Actor, id uint) (*entities.Sessao, error) {
	return s.load(ctx, actor, access.OpRead, id)
}

// Create cria uma sessão com o ator como autor
func (s *SessaoService) Create(ctx context.Context, actor access.Actor, input SessaoInput) (*entities.Sessao, error) {
	if err := s.access.Authorize(actor, access.ResourceSessao, access.OpCreate); err != nil {
		return nil, err
	}

	sessao := &entities.Sessao{CadastradoPorID: actor.UserID}
	applySessaoInput(sessao, input)
	if err := s.validate(ctx, sessao); err != nil {
		return nil, err
	}

	if err := s.sessaoRepo.Create(ctx, sessao); err != nil {
		return nil, err
	}

	s.logger.Info("sessao created", "sessao_id", sessao.ID, "user_id", actor.UserID)
	return sessao, nil
}

// Update altera uma sessão do ator; o autor é preservado
func (s *SessaoService) Update(ctx context.Context, actor access.Actor, id uint, input SessaoInput) (*entities.Sessao, error) {
	sessao, err := s.load(ctx, actor, access.OpUpdate, id)
	if err != nil {
		return nil, err
	}

	applySessaoInput(sessao, input)
	if err := s.validate(ctx, sessao); err != nil {
		return nil, err
	}

	if err := s.sessaoRepo.Update(ctx, sessao); err != nil {
		return nil, err
	}

	s.logger.Info("sessao updated", "sessao_id", sessao.ID, "user_id", actor.UserID)
	return sessao, nil
}

func (s *SessaoService) Delete(ctx context.Context, actor access.Actor, id uint) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		sessao, err := s.load(txCtx, actor, access.OpDelete, id)
		if err != nil {
			return err
		}
		if err := s.sessaoRepo.Delete(txCtx, sessao.ID); err != nil {
			return err
		}

		s.logger.Info("sessao deleted", "sessao_id", sessao.ID, "user_id", actor.UserID)
		return nil
	})
}

func (s *SessaoService) load(ctx context.Context, actor access.Actor, op access.Operation, id uint) (*entities.Sessao, error) {
	if err := s.access.Authorize(actor, access.ResourceSessao, op); err != nil {
		return nil, err
	}
	scope, err := s.access.Scope(actor, access.ResourceSessao)
	if err != nil {
		return nil, err
	}

	sessao, err := s.sessaoRepo.FindByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if sessao == nil {
		return nil, domainerrors.ErrNotFound
	}
	return sessao, nil
}

// validate aplica as regras da entidade e confere que as referências existem
func (s *SessaoService) validate(ctx context.Context, sessao *entities.Sessao) error {
	if err := toValidationError(sessao.Validate()); err != nil {
		return err
	}

	fields := map[string]string{}

	ok, err := s.clienteRepo.Exists(ctx, sessao.ClienteID)
	if err != nil {
		return err
	}
	if !ok {
		fields["cliente_id"] = "validation.invalid_choice"
	}

	ok, err = s.fotografoRepo.Exists(ctx, sessao.FotografoID)
	if err != nil {
		return err
	}
	if !ok {
		fields["fotografo_id"] = "validation.invalid_choice"
	}

	if sessao.EstudioID != nil {
		ok, err = s.estudioRepo.Exists(ctx, *sessao.EstudioID)
		if err != nil {
			return err
		}
		if !ok {
			fields["estudio_id"] = "validation.invalid_choice"
		}
	}

	if len(fields) > 0 {
		return &domainerrors.ValidationError{Fields: fields}
	}
	return nil
}

func applySessaoInput(sessao *entities.Sessao, input SessaoInput) {
	sessao.Data = input.Data
	sessao.Horario = input.Horario
	sessao.Duracao = input.Duracao
	sessao.Tipo = input.Tipo
	sessao.Valor = input.Valor
	sessao.Finalizado = input.Finalizado
	sessao.ClienteID = input.ClienteID
	sessao.FotografoID = input.FotografoID
	sessao.EstudioID = input.EstudioID
}

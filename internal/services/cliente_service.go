package services

import (
	"context"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/services/access"
)

// ClienteService contém a lógica de negócio para clientes
type ClienteService struct {
	clienteRepo repositories.ClienteRepository
	sessaoRepo  repositories.SessaoRepository
	access      *access.Controller
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewClienteService cria um novo ClienteService
func NewClienteService(
	clienteRepo repositories.ClienteRepository,
	sessaoRepo repositories.SessaoRepository,
	controller *access.Controller,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ClienteService {
	return &ClienteService{
		clienteRepo: clienteRepo,
		sessaoRepo:  sessaoRepo,
		access:      controller,
		uow:         uow,
		logger:      logger,
	}
}

// ClienteInput representa os campos editáveis de um cliente
type ClienteInput struct {
	Nome     string
	Telefone string
}

// List retorna os clientes visíveis para o ator
func (s *ClienteService) List(ctx context.Context, actor access.Actor, filters repositories.ListFilters) ([]*entities.Cliente, error) {
	if err := s.access.Authorize(actor, access.ResourceCliente, access.OpList); err != nil {
		return nil, err
	}
	scope, err := s.access.Scope(actor, access.ResourceCliente)
	if err != nil {
		return nil, err
	}
	return s.clienteRepo.List(ctx, scope, filters)
}

// Get busca um cliente dentro do escopo do ator
func (s *ClienteService) Get(ctx context.Context, actor access.Actor, id uint) (*entities.Cliente, error) {
	return s.load(ctx, actor, access.OpRead, id)
}

// Create cria o perfil de cliente do próprio ator
func (s *ClienteService) Create(ctx context.Context, actor access.Actor, input ClienteInput) (*entities.Cliente, error) {
	if err := s.access.Authorize(actor, access.ResourceCliente, access.OpCreate); err != nil {
		return nil, err
	}

	cliente := &entities.Cliente{
		Nome:     input.Nome,
		Telefone: input.Telefone,
		UserID:   actor.UserID,
	}
	if err := toValidationError(cliente.Validate()); err != nil {
		return nil, err
	}

	if err := s.clienteRepo.Create(ctx, cliente); err != nil {
		return nil, err
	}

	s.logger.Info("cliente created", "cliente_id", cliente.ID, "user_id", actor.UserID)
	return cliente, nil
}

// Update altera um cliente visível para o ator
func (s *ClienteService) Update(ctx context.Context, actor access.Actor, id uint, input ClienteInput) (*entities.Cliente, error) {
	cliente, err := s.load(ctx, actor, access.OpUpdate, id)
	if err != nil {
		return nil, err
	}

	cliente.Nome = input.Nome
	cliente.Telefone = input.Telefone
	if err := toValidationError(cliente.Validate()); err != nil {
		return nil, err
	}

	if err := s.clienteRepo.Update(ctx, cliente); err != nil {
		return nil, err
	}

	s.logger.Info("cliente updated", "cliente_id", cliente.ID, "user_id", actor.UserID)
	return cliente, nil
}

// Delete exclui o cliente se nenhuma sessão o referencia
func (s *ClienteService) Delete(ctx context.Context, actor access.Actor, id uint) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		cliente, err := s.load(txCtx, actor, access.OpDelete, id)
		if err != nil {
			return err
		}

		count, err := s.sessaoRepo.CountByCliente(txCtx, cliente.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return &domainerrors.ProtectedError{Resource: "cliente", ReferencedBy: "sessoes", Count: count}
		}

		if err := s.clienteRepo.Delete(txCtx, cliente.ID); err != nil {
			return err
		}

		s.logger.Info("cliente deleted", "cliente_id", cliente.ID, "user_id", actor.UserID)
		return nil
	})
}

// load aplica o portão de papel antes de buscar; fora do escopo é ErrNotFound
func (s *ClienteService) load(ctx context.Context, actor access.Actor, op access.Operation, id uint) (*entities.Cliente, error) {
	if err := s.access.Authorize(actor, access.ResourceCliente, op); err != nil {
		return nil, err
	}
	scope, err := s.access.Scope(actor, access.ResourceCliente)
	if err != nil {
		return nil, err
	}

	cliente, err := s.clienteRepo.FindByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domainerrors.ErrNotFound
	}
	return cliente, nil
}

package services

import (
	"context"
	"strings"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/domain/valueobjects"
)

// RegistrationService cadastra usuários com grupo e perfil em uma única transação
type RegistrationService struct {
	userRepo      repositories.UserRepository
	groupRepo     repositories.GroupRepository
	clienteRepo   repositories.ClienteRepository
	fotografoRepo repositories.FotografoRepository
	hasher        ports.PasswordHasher
	uow           ports.UnitOfWork
	logger        ports.Logger
}

// NewRegistrationService cria um novo RegistrationService
func NewRegistrationService(
	userRepo repositories.UserRepository,
	groupRepo repositories.GroupRepository,
	clienteRepo repositories.ClienteRepository,
	fotografoRepo repositories.FotografoRepository,
	hasher ports.PasswordHasher,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *RegistrationService {
	return &RegistrationService{
		userRepo:      userRepo,
		groupRepo:     groupRepo,
		clienteRepo:   clienteRepo,
		fotografoRepo: fotografoRepo,
		hasher:        hasher,
		uow:           uow,
		logger:        logger,
	}
}

// RegisterInput representa o formulário de cadastro de usuário
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}

// Register cria usuário, associa o grupo do perfil e garante o registro de perfil.
// Qualquer falha desfaz todos os passos.
func (s *RegistrationService) Register(ctx context.Context, profile entities.Profile, input RegisterInput) (*entities.User, error) {
	if _, ok := entities.ParseProfile(string(profile)); !ok {
		return nil, domainerrors.ErrInvalidLoginProfile
	}

	user, err := s.buildUser(input)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, user); err != nil {
			return err
		}

		groupID, err := s.groupRepo.GetOrCreate(txCtx, profile.Role())
		if err != nil {
			return err
		}
		if err := s.groupRepo.AddMember(txCtx, user.ID, groupID); err != nil {
			return err
		}

		_, err = s.EnsureProfile(txCtx, user.ID, profile)
		return err
	})
	if err != nil {
		s.logger.Warn("registration failed", "username", input.Username, "profile", profile, "error", err)
		return nil, err
	}

	user.Groups = []entities.Role{profile.Role()}
	s.logger.Info("user registered", "user_id", user.ID, "profile", profile)
	return user, nil
}

// EnsureProfile retorna o ID do perfil do usuário, criando-o na primeira chamada
func (s *RegistrationService) EnsureProfile(ctx context.Context, userID uint, profile entities.Profile) (uint, error) {
	switch profile {
	case entities.ProfileCliente:
		c, _, err := s.clienteRepo.GetOrCreateByUser(ctx, userID)
		if err != nil {
			return 0, err
		}
		return c.ID, nil
	case entities.ProfileFotografo:
		f, _, err := s.fotografoRepo.GetOrCreateByUser(ctx, userID)
		if err != nil {
			return 0, err
		}
		return f.ID, nil
	default:
		return 0, domainerrors.ErrInvalidLoginProfile
	}
}

func (s *RegistrationService) buildUser(input RegisterInput) (*entities.User, error) {
	if err := validateNewPassword(input.Password, input.PasswordConfirm); err != nil {
		return nil, err
	}

	email, err := valueobjects.NewOptionalEmail(input.Email)
	if err != nil {
		return nil, domainerrors.NewValidationError("email", err.Error())
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := toValidationError(user.Validate()); err != nil {
		return nil, err
	}
	return user, nil
}

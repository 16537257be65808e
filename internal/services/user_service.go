package services

import (
	"context"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio de contas de usuário
type UserService struct {
	userRepo  repositories.UserRepository
	groupRepo repositories.GroupRepository
	hasher    ports.PasswordHasher
	uow       ports.UnitOfWork
	logger    ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	groupRepo repositories.GroupRepository,
	hasher ports.PasswordHasher,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		groupRepo: groupRepo,
		hasher:    hasher,
		uow:       uow,
		logger:    logger,
	}
}

// CreateSuperuserInput representa os dados para criar um superusuário
type CreateSuperuserInput struct {
	Username      string
	Email         string
	Password      string
	AddAdminGroup bool
}

// CreateSuperuser cria um usuário staff/superusuário, opcionalmente no grupo Admin
func (s *UserService) CreateSuperuser(ctx context.Context, input CreateSuperuserInput) (*entities.User, error) {
	s.logger.Info("creating superuser", "username", input.Username)

	if err := validateNewPassword(input.Password, input.Password); err != nil {
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
		Username:     input.Username,
		Email:        email,
		PasswordHash: hash,
		IsStaff:      true,
		IsSuperuser:  true,
		IsActive:     true,
	}
	if err := toValidationError(user.Validate()); err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		if !input.AddAdminGroup {
			return nil
		}

		groupID, err := s.groupRepo.GetOrCreate(txCtx, entities.RoleAdmin)
		if err != nil {
			return err
		}
		if err := s.groupRepo.AddMember(txCtx, user.ID, groupID); err != nil {
			return err
		}
		user.Groups = []entities.Role{entities.RoleAdmin}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("superuser created", "user_id", user.ID)
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrNotFound
	}
	return user, nil
}

// ChangePasswordInput representa os dados da troca de senha
type ChangePasswordInput struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

// ChangePassword troca a senha do usuário após conferir a senha atual
func (s *UserService) ChangePassword(ctx context.Context, userID uint, input ChangePasswordInput) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Compare(user.PasswordHash, input.OldPassword) {
		return domainerrors.NewValidationError("old_password", "validation.password_incorrect")
	}
	if err := validateNewPassword(input.NewPassword, input.ConfirmPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	s.logger.Info("password changed", "user_id", userID)
	return nil
}

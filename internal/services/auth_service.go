package services

import (
	"context"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
)

// LoginState é o estado do fluxo de login com validação de perfil
type LoginState int

const (
	LoginAwaitingCredentials LoginState = iota
	LoginCredentialsChecked
	LoginRoleChecked
	LoginAuthorized
	LoginRejectedWrongRole
	LoginRejectedMultiRole
	LoginRejectedBadRole
	LoginRejectedCredentials
)

func (s LoginState) String() string {
	switch s {
	case LoginAwaitingCredentials:
		return "awaiting_credentials"
	case LoginCredentialsChecked:
		return "credentials_checked"
	case LoginRoleChecked:
		return "role_checked"
	case LoginAuthorized:
		return "authorized"
	case LoginRejectedWrongRole:
		return "rejected_wrong_role"
	case LoginRejectedMultiRole:
		return "rejected_multi_role"
	case LoginRejectedBadRole:
		return "rejected_bad_role"
	case LoginRejectedCredentials:
		return "rejected_credentials"
	default:
		return "unknown"
	}
}

// Rejected indica estado terminal de rejeição
func (s LoginState) Rejected() bool {
	return s >= LoginRejectedWrongRole
}

// AuthService autentica credenciais e valida o perfil do login
type AuthService struct {
	userRepo  repositories.UserRepository
	hasher    ports.PasswordHasher
	throttler ports.LoginThrottler
	logger    ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	throttler ports.LoginThrottler,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		hasher:    hasher,
		throttler: throttler,
		logger:    logger,
	}
}

type clientIPKey struct{}

// WithClientIP anexa o IP de origem do login ao contexto
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// throttleKey combina usuário e IP, assim falhas vindas de um IP não bloqueiam
// o mesmo usuário em outro. Sem IP no contexto vale apenas o usuário.
func throttleKey(ctx context.Context, username string) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok && ip != "" {
		return username + "|" + ip
	}
	return username
}

// Authenticate confere usuário e senha. Falhas contam para o bloqueio do par usuário/IP.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	key := throttleKey(ctx, username)
	allowed, err := s.throttler.Allow(ctx, key)
	if err != nil {
		// Redis indisponível não impede o login
		s.logger.Warn("login throttler unavailable", "error", err)
	}
	if !allowed {
		s.logger.Warn("login throttled", "username", username)
		return nil, domainerrors.ErrTooManyAttempts
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive || !s.hasher.Compare(user.PasswordHash, password) {
		if err := s.throttler.RegisterFailure(ctx, key); err != nil {
			s.logger.Warn("failed to register login failure", "error", err)
		}
		return nil, domainerrors.ErrInvalidCredentials
	}

	if err := s.throttler.Reset(ctx, key); err != nil {
		s.logger.Warn("failed to reset login throttle", "error", err)
	}
	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn("failed to update last login", "user_id", user.ID, "error", err)
	}

	s.logger.Info("user authenticated", "user_id", user.ID)
	return user, nil
}

// CheckRole valida o usuário já autenticado contra o perfil do login
func (s *AuthService) CheckRole(user *entities.User, profile entities.Profile) (LoginState, error) {
	if !user.HasRole(profile.Role()) {
		return LoginRejectedWrongRole, &domainerrors.WrongRoleError{Required: profile.Role().String()}
	}
	if user.HasRole(profile.ConflictingRole()) {
		return LoginRejectedMultiRole, domainerrors.ErrMultipleRoles
	}
	return LoginAuthorized, nil
}

// Login executa o fluxo completo sem sessão (usado pela emissão de token).
// O perfil inválido é rejeitado antes de conferir credenciais.
func (s *AuthService) Login(ctx context.Context, rawProfile, username, password string) (*entities.User, LoginState, error) {
	profile, ok := entities.ParseProfile(rawProfile)
	if !ok {
		return nil, LoginRejectedBadRole, domainerrors.ErrInvalidLoginProfile
	}

	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, LoginRejectedCredentials, err
	}

	state, err := s.CheckRole(user, profile)
	if err != nil {
		s.logger.Info("login rejected", "user_id", user.ID, "profile", profile, "state", state.String())
		return nil, state, err
	}
	return user, state, nil
}

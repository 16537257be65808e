package repositories

import (
	"context"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	UpdateFlags(ctx context.Context, user *entities.User) error
	TouchLastLogin(ctx context.Context, id uint) error
}

// GroupRepository é o registro de papéis (grupos) e associações
type GroupRepository interface {
	// GetOrCreate faz upsert idempotente pelo nome (índice único)
	GetOrCreate(ctx context.Context, role entities.Role) (uint, error)
	// AddMember associa usuário e grupo; repetir a chamada não é erro
	AddMember(ctx context.Context, userID, groupID uint) error
	RolesOf(ctx context.Context, userID uint) ([]entities.Role, error)
}

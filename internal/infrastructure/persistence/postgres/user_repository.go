package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
	"github.com/rafabene/agendafoto-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrUsernameTaken
		}
		return err
	}

	user.ID = model.ID
	user.CreatedAt = time.Unix(model.CreatedAt, 0)
	user.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&UserModel{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateFlags(ctx context.Context, user *entities.User) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&UserModel{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"is_staff":     user.IsStaff,
		"is_superuser": user.IsSuperuser,
		"is_active":    user.IsActive,
	}).Error
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	now := time.Now().Unix()
	return db.Model(&UserModel{}).Where("id = ?", id).Update("last_login_at", now).Error
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg interface{}) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	roles, err := rolesOf(db, model.ID)
	if err != nil {
		return nil, err
	}

	return r.toEntity(&model, roles)
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	var lastLogin *int64
	if user.LastLoginAt != nil {
		ts := user.LastLoginAt.Unix()
		lastLogin = &ts
	}

	return &UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email.String(),
		PasswordHash: user.PasswordHash,
		IsStaff:      user.IsStaff,
		IsSuperuser:  user.IsSuperuser,
		IsActive:     user.IsActive,
		LastLoginAt:  lastLogin,
	}
}

func (r *UserRepository) toEntity(model *UserModel, roles []entities.Role) (*entities.User, error) {
	email, err := valueobjects.NewOptionalEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var lastLogin *time.Time
	if model.LastLoginAt != nil {
		ts := time.Unix(*model.LastLoginAt, 0)
		lastLogin = &ts
	}

	return &entities.User{
		ID:           model.ID,
		Username:     model.Username,
		Email:        email,
		PasswordHash: model.PasswordHash,
		Groups:       roles,
		IsStaff:      model.IsStaff,
		IsSuperuser:  model.IsSuperuser,
		IsActive:     model.IsActive,
		LastLoginAt:  lastLogin,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}, nil
}

// isUniqueViolation reconhece violação de índice único no PostgreSQL e no sqlite
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
)

// ClienteRepository implementa repositories.ClienteRepository
type ClienteRepository struct {
	db *gorm.DB
}

// NewClienteRepository cria um novo ClienteRepository
func NewClienteRepository(db *gorm.DB) repositories.ClienteRepository {
	return &ClienteRepository{db: db}
}

func (r *ClienteRepository) Create(ctx context.Context, cliente *entities.Cliente) error {
	model := r.toModel(cliente)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrProfileAlreadyExists
		}
		return err
	}

	*cliente = *r.toEntity(model)
	return nil
}

// GetOrCreateByUser insere o perfil com ON CONFLICT (user_id) DO NOTHING e relê a linha,
// então chamadas concorrentes para o mesmo usuário recebem o mesmo registro
func (r *ClienteRepository) GetOrCreateByUser(ctx context.Context, userID uint) (*entities.Cliente, bool, error) {
	db := dbFromContext(ctx, r.db)

	insert := ClienteModel{UserID: userID}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&insert)
	if result.Error != nil {
		return nil, false, fmt.Errorf("upsert cliente for user %d: %w", userID, result.Error)
	}

	var model ClienteModel
	if err := db.Where("user_id = ?", userID).First(&model).Error; err != nil {
		return nil, false, fmt.Errorf("load cliente for user %d: %w", userID, err)
	}
	return r.toEntity(&model), result.RowsAffected == 1, nil
}

func (r *ClienteRepository) FindByID(ctx context.Context, id uint, scope repositories.Scope) (*entities.Cliente, error) {
	var model ClienteModel

	db := applyScope(dbFromContext(ctx, r.db), scope)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&model), nil
}

func (r *ClienteRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&ClienteModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ClienteRepository) Update(ctx context.Context, cliente *entities.Cliente) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&ClienteModel{}).Where("id = ?", cliente.ID).Updates(map[string]interface{}{
		"nome":     cliente.Nome,
		"telefone": cliente.Telefone,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	cliente.UpdatedAt = time.Now()
	return nil
}

func (r *ClienteRepository) Delete(ctx context.Context, id uint) error {
	result := dbFromContext(ctx, r.db).Delete(&ClienteModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ClienteRepository) List(ctx context.Context, scope repositories.Scope, filters repositories.ListFilters) ([]*entities.Cliente, error) {
	var models []ClienteModel

	db := applyScope(dbFromContext(ctx, r.db), scope)
	if err := paginate(db, filters).Order("nome, id").Find(&models).Error; err != nil {
		return nil, err
	}

	clientes := make([]*entities.Cliente, len(models))
	for i := range models {
		clientes[i] = r.toEntity(&models[i])
	}
	return clientes, nil
}

// Conversores
func (r *ClienteRepository) toModel(c *entities.Cliente) *ClienteModel {
	return &ClienteModel{
		ID:       c.ID,
		Nome:     c.Nome,
		Telefone: c.Telefone,
		UserID:   c.UserID,
	}
}

func (r *ClienteRepository) toEntity(m *ClienteModel) *entities.Cliente {
	return &entities.Cliente{
		ID:        m.ID,
		Nome:      m.Nome,
		Telefone:  m.Telefone,
		UserID:    m.UserID,
		CreatedAt: time.Unix(m.CreatedAt, 0),
		UpdatedAt: time.Unix(m.UpdatedAt, 0),
	}
}

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

// FotografoRepository implementa repositories.FotografoRepository
type FotografoRepository struct {
	db *gorm.DB
}

// NewFotografoRepository cria um novo FotografoRepository
func NewFotografoRepository(db *gorm.DB) repositories.FotografoRepository {
	return &FotografoRepository{db: db}
}

func (r *FotografoRepository) Create(ctx context.Context, fotografo *entities.Fotografo) error {
	model := r.toModel(fotografo)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrProfileAlreadyExists
		}
		return err
	}

	*fotografo = *r.toEntity(model)
	return nil
}

// GetOrCreateByUser insere o perfil com ON CONFLICT (user_id) DO NOTHING e relê a linha,
// então chamadas concorrentes para o mesmo usuário recebem o mesmo registro
func (r *FotografoRepository) GetOrCreateByUser(ctx context.Context, userID uint) (*entities.Fotografo, bool, error) {
	db := dbFromContext(ctx, r.db)

	insert := FotografoModel{UserID: userID}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&insert)
	if result.Error != nil {
		return nil, false, fmt.Errorf("upsert fotografo for user %d: %w", userID, result.Error)
	}

	var model FotografoModel
	if err := db.Where("user_id = ?", userID).First(&model).Error; err != nil {
		return nil, false, fmt.Errorf("load fotografo for user %d: %w", userID, err)
	}
	return r.toEntity(&model), result.RowsAffected == 1, nil
}

func (r *FotografoRepository) FindByID(ctx context.Context, id uint, scope repositories.Scope) (*entities.Fotografo, error) {
	var model FotografoModel

	db := applyScope(dbFromContext(ctx, r.db), scope)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&model), nil
}

func (r *FotografoRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&FotografoModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *FotografoRepository) Update(ctx context.Context, fotografo *entities.Fotografo) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&FotografoModel{}).Where("id = ?", fotografo.ID).Updates(map[string]interface{}{
		"nome":          fotografo.Nome,
		"especialidade": fotografo.Especialidade,
		"telefone":      fotografo.Telefone,
		"foto_perfil":   fotografo.FotoPerfil,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	fotografo.UpdatedAt = time.Now()
	return nil
}

// Delete remove o fotógrafo junto com os itens do portfólio
func (r *FotografoRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	if err := db.Where("fotografo_id = ?", id).Delete(&PortfolioItemModel{}).Error; err != nil {
		return err
	}

	result := db.Delete(&FotografoModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *FotografoRepository) List(ctx context.Context, scope repositories.Scope, filters repositories.ListFilters) ([]*entities.Fotografo, error) {
	var models []FotografoModel

	db := applyScope(dbFromContext(ctx, r.db), scope)
	if err := paginate(db, filters).Order("nome, id").Find(&models).Error; err != nil {
		return nil, err
	}

	fotografos := make([]*entities.Fotografo, len(models))
	for i := range models {
		fotografos[i] = r.toEntity(&models[i])
	}
	return fotografos, nil
}

// Conversores
func (r *FotografoRepository) toModel(f *entities.Fotografo) *FotografoModel {
	return &FotografoModel{
		ID:            f.ID,
		Nome:          f.Nome,
		Especialidade: f.Especialidade,
		Telefone:      f.Telefone,
		FotoPerfil:    f.FotoPerfil,
		UserID:        f.UserID,
	}
}

func (r *FotografoRepository) toEntity(m *FotografoModel) *entities.Fotografo {
	return &entities.Fotografo{
		ID:            m.ID,
		Nome:          m.Nome,
		Especialidade: m.Especialidade,
		Telefone:      m.Telefone,
		FotoPerfil:    m.FotoPerfil,
		UserID:        m.UserID,
		CreatedAt:     time.Unix(m.CreatedAt, 0),
		UpdatedAt:     time.Unix(m.UpdatedAt, 0),
	}
}

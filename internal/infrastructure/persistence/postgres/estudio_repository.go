package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
)

// EstudioRepository implementa repositories.EstudioRepository
type EstudioRepository struct {
	db *gorm.DB
}

// NewEstudioRepository cria um novo EstudioRepository
func NewEstudioRepository(db *gorm.DB) repositories.EstudioRepository {
	return &EstudioRepository{db: db}
}

func (r *EstudioRepository) Create(ctx context.Context, estudio *entities.Estudio) error {
	model := r.toModel(estudio)
	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	*estudio = *r.toEntity(model)
	return nil
}

func (r *EstudioRepository) FindByID(ctx context.Context, id uint, scope repositories.Scope) (*entities.Estudio, error) {
	var model EstudioModel

	db := applyScope(dbFromContext(ctx, r.db), scope)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&model), nil
}

func (r *EstudioRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&EstudioModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *EstudioRepository) Update(ctx context.Context, estudio *entities.Estudio) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&EstudioModel{}).Where("id = ?", estudio.ID).Updates(map[string]interface{}{
		"nome":     estudio.Nome,
		"endereco": estudio.Endereco,
		"telefone": estudio.Telefone,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	estudio.UpdatedAt = time.Now()
	return nil
}

// Delete desvincula as sessões (estudio_id = NULL) antes de remover o estúdio
func (r *EstudioRepository) Delete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	err := db.Model(&SessaoModel{}).Where("estudio_id = ?", id).Update("estudio_id", nil).Error
	if err != nil {
		return err
	}

	result := db.Delete(&EstudioModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *EstudioRepository) List(ctx context.Context, scope repositories.Scope, filters repositories.ListFilters) ([]*entities.Estudio, error) {
	var models []EstudioModel

	db := applyScope(dbFromContext(ctx, r.db), scope)
	if err := paginate(db, filters).Order("nome, id").Find(&models).Error; err != nil {
		return nil, err
	}

	estudios := make([]*entities.Estudio, len(models))
	for i := range models {
		estudios[i] = r.toEntity(&models[i])
	}
	return estudios, nil
}

// Conversores
func (r *EstudioRepository) toModel(e *entities.Estudio) *EstudioModel {
	return &EstudioModel{
		ID:              e.ID,
		Nome:            e.Nome,
		Endereco:        e.Endereco,
		Telefone:        e.Telefone,
		CadastradoPorID: e.CadastradoPorID,
	}
}

func (r *EstudioRepository) toEntity(m *EstudioModel) *entities.Estudio {
	return &entities.Estudio{
		ID:              m.ID,
		Nome:            m.Nome,
		Endereco:        m.Endereco,
		Telefone:        m.Telefone,
		CadastradoPorID: m.CadastradoPorID,
		CreatedAt:       time.Unix(m.CreatedAt, 0),
		UpdatedAt:       time.Unix(m.UpdatedAt, 0),
	}
}

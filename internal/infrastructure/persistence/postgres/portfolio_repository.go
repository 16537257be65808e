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

// PortfolioRepository implementa repositories.PortfolioRepository
type PortfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository cria um novo PortfolioRepository
func NewPortfolioRepository(db *gorm.DB) repositories.PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) Create(ctx context.Context, item *entities.PortfolioItem) error {
	model := &PortfolioItemModel{
		FotografoID: item.FotografoID,
		FotoURL:     item.FotoURL,
		Descricao:   item.Descricao,
	}
	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	*item = *r.toEntity(model)
	return nil
}

func (r *PortfolioRepository) FindByID(ctx context.Context, id uint) (*entities.PortfolioItem, error) {
	var model PortfolioItemModel
	if err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&model), nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, id uint) error {
	result := dbFromContext(ctx, r.db).Delete(&PortfolioItemModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *PortfolioRepository) ListByFotografo(ctx context.Context, fotografoID uint, filters repositories.ListFilters) ([]*entities.PortfolioItem, error) {
	var models []PortfolioItemModel

	db := dbFromContext(ctx, r.db).Where("fotografo_id = ?", fotografoID)
	if err := paginate(db, filters).Order("created_at DESC, id DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	itens := make([]*entities.PortfolioItem, len(models))
	for i := range models {
		itens[i] = r.toEntity(&models[i])
	}
	return itens, nil
}

func (r *PortfolioRepository) toEntity(m *PortfolioItemModel) *entities.PortfolioItem {
	return &entities.PortfolioItem{
		ID:          m.ID,
		FotografoID: m.FotografoID,
		FotoURL:     m.FotoURL,
		Descricao:   m.Descricao,
		CreatedAt:   time.Unix(m.CreatedAt, 0),
	}
}

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

// SessaoRepository implementa repositories.SessaoRepository
type SessaoRepository struct {
	db *gorm.DB
}

// NewSessaoRepository cria um novo SessaoRepository
func NewSessaoRepository(db *gorm.DB) repositories.SessaoRepository {
	return &SessaoRepository{db: db}
}

func (r *SessaoRepository) Create(ctx context.Context, sessao *entities.Sessao) error {
	model := r.toModel(sessao)
	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	*sessao = *r.toEntity(model)
	return nil
}

func (r *SessaoRepository) FindByID(ctx context.Context, id uint, scope repositories.Scope) (*entities.Sessao, error) {
	var model SessaoModel

	db := applyScope(dbFromContext(ctx, r.db), scope)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&model), nil
}

// Update regrava os campos editáveis; o autor (cadastrado_por) nunca muda
func (r *SessaoRepository) Update(ctx context.Context, sessao *entities.Sessao) error {
	model := r.toModel(sessao)

	db := dbFromContext(ctx, r.db)
	result := db.Model(&SessaoModel{}).Where("id = ?", sessao.ID).Updates(map[string]interface{}{
		"data":         model.Data,
		"horario":      model.Horario,
		"duracao":      model.Duracao,
		"tipo":         model.Tipo,
		"valor":        model.Valor,
		"finalizado":   model.Finalizado,
		"cliente_id":   model.ClienteID,
		"fotografo_id": model.FotografoID,
		"estudio_id":   model.EstudioID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	sessao.UpdatedAt = time.Now()
	return nil
}

func (r *SessaoRepository) Delete(ctx context.Context, id uint) error {
	result := dbFromContext(ctx, r.db).Delete(&SessaoModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List retorna as sessões do escopo ordenadas por data e horário
func (r *SessaoRepository) List(ctx context.Context, scope repositories.Scope, filters repositories.SessaoFilters) ([]*entities.Sessao, error) {
	var models []SessaoModel

	db := applyScope(dbFromContext(ctx, r.db), scope)
	if filters.Finalizado != nil {
		db = db.Where("finalizado = ?", *filters.Finalizado)
	}

	if err := paginate(db, filters.ListFilters).Order("data, horario, id").Find(&models).Error; err != nil {
		return nil, err
	}

	sessoes := make([]*entities.Sessao, len(models))
	for i := range models {
		sessoes[i] = r.toEntity(&models[i])
	}
	return sessoes, nil
}

func (r *SessaoRepository) CountByCliente(ctx context.Context, clienteID uint) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&SessaoModel{}).Where("cliente_id = ?", clienteID).Count(&count).Error
	return count, err
}

func (r *SessaoRepository) CountByFotografo(ctx context.Context, fotografoID uint) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&SessaoModel{}).Where("fotografo_id = ?", fotografoID).Count(&count).Error
	return count, err
}

// Conversores
func (r *SessaoRepository) toModel(s *entities.Sessao) *SessaoModel {
	return &SessaoModel{
		ID:              s.ID,
		Data:            dateOnly(s.Data),
		Horario:         normalizeHorario(s.Horario),
		Duracao:         s.Duracao,
		Tipo:            s.Tipo,
		Valor:           s.Valor,
		Finalizado:      s.Finalizado,
		ClienteID:       s.ClienteID,
		FotografoID:     s.FotografoID,
		EstudioID:       s.EstudioID,
		CadastradoPorID: s.CadastradoPorID,
	}
}

func (r *SessaoRepository) toEntity(m *SessaoModel) *entities.Sessao {
	return &entities.Sessao{
		ID:              m.ID,
		Data:            dateOnly(m.Data),
		Horario:         normalizeHorario(m.Horario),
		Duracao:         m.Duracao,
		Tipo:            m.Tipo,
		Valor:           m.Valor,
		Finalizado:      m.Finalizado,
		ClienteID:       m.ClienteID,
		FotografoID:     m.FotografoID,
		EstudioID:       m.EstudioID,
		CadastradoPorID: m.CadastradoPorID,
		CreatedAt:       time.Unix(m.CreatedAt, 0),
		UpdatedAt:       time.Unix(m.UpdatedAt, 0),
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// normalizeHorario reduz "15:04:05" (coluna time do PostgreSQL) para "15:04"
func normalizeHorario(h string) string {
	if len(h) > len(entities.HorarioLayout) {
		return h[:len(entities.HorarioLayout)]
	}
	return h
}

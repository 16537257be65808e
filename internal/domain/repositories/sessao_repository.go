package repositories

import (
	"context"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
)

// EstudioRepository define a interface para persistência de estúdios
type EstudioRepository interface {
	Create(ctx context.Context, estudio *entities.Estudio) error
	FindByID(ctx context.Context, id uint, scope Scope) (*entities.Estudio, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, estudio *entities.Estudio) error
	// Delete remove o estúdio e desvincula as sessões que o referenciam
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, scope Scope, filters ListFilters) ([]*entities.Estudio, error)
}

// SessaoRepository define a interface para persistência de sessões
type SessaoRepository interface {
	Create(ctx context.Context, sessao *entities.Sessao) error
	FindByID(ctx context.Context, id uint, scope Scope) (*entities.Sessao, error)
	Update(ctx context.Context, sessao *entities.Sessao) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, scope Scope, filters SessaoFilters) ([]*entities.Sessao, error)
	CountByCliente(ctx context.Context, clienteID uint) (int64, error)
	CountByFotografo(ctx context.Context, fotografoID uint) (int64, error)
}

// SessaoFilters contém filtros para listagem de sessões
type SessaoFilters struct {
	ListFilters
	Finalizado *bool
}

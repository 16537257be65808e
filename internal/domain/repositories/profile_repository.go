package repositories

import (
	"context"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
)

// ClienteRepository define a interface para persistência de clientes
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entities.Cliente) error
	// GetOrCreateByUser retorna o perfil do usuário, criando-o se não existir
	GetOrCreateByUser(ctx context.Context, userID uint) (*entities.Cliente, bool, error)
	FindByID(ctx context.Context, id uint, scope Scope) (*entities.Cliente, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, cliente *entities.Cliente) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, scope Scope, filters ListFilters) ([]*entities.Cliente, error)
}

// FotografoRepository define a interface para persistência de fotógrafos
type FotografoRepository interface {
	Create(ctx context.Context, fotografo *entities.Fotografo) error
	GetOrCreateByUser(ctx context.Context, userID uint) (*entities.Fotografo, bool, error)
	FindByID(ctx context.Context, id uint, scope Scope) (*entities.Fotografo, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, fotografo *entities.Fotografo) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, scope Scope, filters ListFilters) ([]*entities.Fotografo, error)
}

// PortfolioRepository define a interface para persistência do portfólio
type PortfolioRepository interface {
	Create(ctx context.Context, item *entities.PortfolioItem) error
	FindByID(ctx context.Context, id uint) (*entities.PortfolioItem, error)
	Delete(ctx context.Context, id uint) error
	ListByFotografo(ctx context.Context, fotografoID uint, filters ListFilters) ([]*entities.PortfolioItem, error)
}

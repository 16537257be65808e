package postgres

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
)

// applyScope restringe a consulta às linhas visíveis para o ator.
// Um escopo restrito sem usuário não enxerga nada.
func applyScope(db *gorm.DB, scope repositories.Scope) *gorm.DB {
	if scope.Unrestricted {
		return db
	}
	if scope.Column == "" || scope.UserID == 0 {
		return db.Where("1 = 0")
	}
	return db.Where(clause.Eq{Column: clause.Column{Name: scope.Column}, Value: scope.UserID})
}

func paginate(db *gorm.DB, filters repositories.ListFilters) *gorm.DB {
	f := filters.Normalize()
	return db.Offset(f.Offset()).Limit(f.PageSize)
}

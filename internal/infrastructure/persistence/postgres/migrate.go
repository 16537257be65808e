package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate cria/atualiza o schema de todas as tabelas
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&UserModel{},
		&GroupModel{},
		&UserGroupModel{},
		&ClienteModel{},
		&FotografoModel{},
		&EstudioModel{},
		&SessaoModel{},
		&PortfolioItemModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

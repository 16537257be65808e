package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
)

// GroupRepository implementa repositories.GroupRepository
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository cria um novo GroupRepository
func NewGroupRepository(db *gorm.DB) repositories.GroupRepository {
	return &GroupRepository{db: db}
}

// GetOrCreate insere o grupo com ON CONFLICT DO NOTHING e relê pelo nome.
// O índice único em groups.name resolve cadastros concorrentes.
func (r *GroupRepository) GetOrCreate(ctx context.Context, role entities.Role) (uint, error) {
	db := dbFromContext(ctx, r.db)

	insert := GroupModel{Name: role.String()}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&insert).Error
	if err != nil {
		return 0, fmt.Errorf("upsert group %s: %w", role, err)
	}

	var group GroupModel
	if err := db.Where("name = ?", role.String()).First(&group).Error; err != nil {
		return 0, fmt.Errorf("load group %s: %w", role, err)
	}
	return group.ID, nil
}

func (r *GroupRepository) AddMember(ctx context.Context, userID, groupID uint) error {
	db := dbFromContext(ctx, r.db)
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&UserGroupModel{UserID: userID, GroupID: groupID}).Error
}

func (r *GroupRepository) RolesOf(ctx context.Context, userID uint) ([]entities.Role, error) {
	return rolesOf(dbFromContext(ctx, r.db), userID)
}

func rolesOf(db *gorm.DB, userID uint) ([]entities.Role, error) {
	var names []string
	err := db.Model(&GroupModel{}).
		Joins("JOIN user_groups ON user_groups.group_id = groups.id").
		Where("user_groups.user_id = ?", userID).
		Order("groups.name").
		Pluck("groups.name", &names).Error
	if err != nil {
		return nil, err
	}

	roles := make([]entities.Role, 0, len(names))
	for _, n := range names {
		roles = append(roles, entities.Role(n))
	}
	return roles, nil
}

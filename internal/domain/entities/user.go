package entities

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/rafabene/agendafoto-backend/internal/domain/valueobjects"
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}.@+\-_]+$`)

// User representa uma conta de acesso
type User struct {
	ID           uint
	Username     string
	Email        valueobjects.Email
	PasswordHash string
	Groups       []Role
	IsStaff      bool
	IsSuperuser  bool
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole verifica se o usuário pertence ao grupo
func (u *User) HasRole(role Role) bool {
	for _, g := range u.Groups {
		if g == role {
			return true
		}
	}
	return false
}

// HasAnyRole verifica se o usuário pertence a algum dos grupos
func (u *User) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if u.HasRole(r) {
			return true
		}
	}
	return false
}

// IsPrivileged indica staff ou superusuário
func (u *User) IsPrivileged() bool {
	return u.IsStaff || u.IsSuperuser
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Username,
			validation.Required,
			validation.Length(1, 150),
			validation.Match(usernamePattern),
		),
		validation.Field(&u.PasswordHash, validation.Required),
	)
}

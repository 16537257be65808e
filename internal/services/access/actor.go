package access

import "github.com/rafabene/agendafoto-backend/internal/domain/entities"

// Actor é o usuário autenticado (ou anônimo) que faz a requisição
type Actor struct {
	UserID    uint
	Username  string
	Roles     []entities.Role
	Staff     bool
	Superuser bool
}

// Anonymous retorna um ator não autenticado
func Anonymous() Actor {
	return Actor{}
}

// ActorFromUser monta o ator a partir do usuário carregado
func ActorFromUser(u *entities.User) Actor {
	if u == nil {
		return Anonymous()
	}
	roles := make([]entities.Role, len(u.Groups))
	copy(roles, u.Groups)
	return Actor{
		UserID:    u.ID,
		Username:  u.Username,
		Roles:     roles,
		Staff:     u.IsStaff,
		Superuser: u.IsSuperuser,
	}
}

func (a Actor) IsAuthenticated() bool {
	return a.UserID != 0
}

// IsPrivileged indica staff ou superusuário
func (a Actor) IsPrivileged() bool {
	return a.Staff || a.Superuser
}

func (a Actor) HasRole(role entities.Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (a Actor) HasAnyRole(roles ...entities.Role) bool {
	for _, r := range roles {
		if a.HasRole(r) {
			return true
		}
	}
	return false
}

package access

import (
	"github.com/rafabene/agendafoto-backend/internal/domain/entities"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
)

// Resource identifica o tipo de registro protegido
type Resource string

const (
	ResourceCliente   Resource = "cliente"
	ResourceFotografo Resource = "fotografo"
	ResourceEstudio   Resource = "estudio"
	ResourceSessao    Resource = "sessao"
	ResourcePortfolio Resource = "portfolio"
)

// Operation é a ação pedida sobre o recurso
type Operation string

const (
	OpList   Operation = "list"
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// OwnerScope decide quais linhas o ator enxerga
type OwnerScope struct {
	Column      string
	StaffBypass bool
}

// ScopeBySelf restringe às linhas cujo user_id é o ator
func ScopeBySelf() OwnerScope {
	return OwnerScope{Column: repositories.OwnerColumnUser}
}

// ScopeBySelfOrStaff libera tudo para staff/superusuário
func ScopeBySelfOrStaff() OwnerScope {
	return OwnerScope{Column: repositories.OwnerColumnUser, StaffBypass: true}
}

// ScopeByCreator restringe às linhas cadastradas pelo ator
func ScopeByCreator() OwnerScope {
	return OwnerScope{Column: repositories.OwnerColumnCadastradoPor}
}

// ScopeByCreatorOrStaff libera tudo para staff/superusuário
func ScopeByCreatorOrStaff() OwnerScope {
	return OwnerScope{Column: repositories.OwnerColumnCadastradoPor, StaffBypass: true}
}

func (s OwnerScope) resolve(actor Actor) repositories.Scope {
	if s.StaffBypass && actor.IsPrivileged() {
		return repositories.Everything()
	}
	return repositories.OwnedBy(s.Column, actor.UserID)
}

// RoleGate exige que o ator tenha algum dos papéis nas operações listadas
type RoleGate struct {
	Roles      []entities.Role
	Operations []Operation
}

// RequireRole cria um RoleGate
func RequireRole(roles []entities.Role, ops ...Operation) RoleGate {
	return RoleGate{Roles: roles, Operations: ops}
}

func (g RoleGate) appliesTo(op Operation) bool {
	for _, o := range g.Operations {
		if o == op {
			return true
		}
	}
	return false
}

// Policy compõe explicitamente escopo e exigências de papel de um recurso
type Policy struct {
	Resource Resource
	Scope    OwnerScope
	Gates    []RoleGate
}

// NewPolicy cria a política de um recurso
func NewPolicy(resource Resource, scope OwnerScope, gates ...RoleGate) Policy {
	return Policy{Resource: resource, Scope: scope, Gates: gates}
}

// DefaultPolicies é a tabela de políticas da aplicação
func DefaultPolicies() []Policy {
	clienteOuAdmin := []entities.Role{entities.RoleCliente, entities.RoleAdmin}
	fotografoOuAdmin := []entities.Role{entities.RoleFotografo, entities.RoleAdmin}

	return []Policy{
		NewPolicy(ResourceCliente, ScopeBySelfOrStaff(),
			RequireRole(clienteOuAdmin, OpCreate, OpUpdate, OpDelete)),
		NewPolicy(ResourceFotografo, ScopeBySelf(),
			RequireRole(fotografoOuAdmin, OpCreate, OpUpdate, OpDelete)),
		NewPolicy(ResourceEstudio, ScopeByCreator()),
		NewPolicy(ResourceSessao, ScopeByCreator()),
		// o dono do item é o usuário do fotógrafo
		NewPolicy(ResourcePortfolio, ScopeBySelf(),
			RequireRole(fotografoOuAdmin, OpCreate, OpDelete)),
	}
}

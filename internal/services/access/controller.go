package access

import (
	"fmt"

	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/repositories"
)

// Owned é qualquer registro com um usuário dono
type Owned interface {
	OwnerID() uint
}

// Controller decide acesso por papel e restringe consultas por dono
type Controller struct {
	policies map[Resource]Policy
}

// NewController cria um Controller com as políticas informadas
func NewController(policies ...Policy) *Controller {
	c := &Controller{policies: make(map[Resource]Policy, len(policies))}
	for _, p := range policies {
		c.policies[p.Resource] = p
	}
	return c
}

// NewDefaultController cria um Controller com DefaultPolicies
func NewDefaultController() *Controller {
	return NewController(DefaultPolicies()...)
}

// Authorize retorna nil quando o ator pode executar op sobre os alvos.
// Falha de papel é ErrForbidden; alvo fora do escopo é ErrNotFound.
func (c *Controller) Authorize(actor Actor, resource Resource, op Operation, targets ...Owned) error {
	if !actor.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated
	}

	policy, ok := c.policies[resource]
	if !ok {
		return fmt.Errorf("no policy for %s: %w", resource, domainerrors.ErrForbidden)
	}

	for _, gate := range policy.Gates {
		if gate.appliesTo(op) && !actor.Superuser && !actor.HasAnyRole(gate.Roles...) {
			return domainerrors.ErrForbidden
		}
	}

	scope := policy.Scope.resolve(actor)
	for _, t := range targets {
		if t == nil || !scope.Includes(t.OwnerID()) {
			return domainerrors.ErrNotFound
		}
	}
	return nil
}

// Scope retorna o predicado de visibilidade do ator para o recurso
func (c *Controller) Scope(actor Actor, resource Resource) (repositories.Scope, error) {
	if !actor.IsAuthenticated() {
		return repositories.Scope{}, domainerrors.ErrUnauthenticated
	}

	policy, ok := c.policies[resource]
	if !ok {
		return repositories.Scope{}, fmt.Errorf("no policy for %s: %w", resource, domainerrors.ErrForbidden)
	}
	return policy.Scope.resolve(actor), nil
}

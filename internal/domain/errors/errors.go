package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrNotFound             = errors.New("error.not_found")
	ErrForbidden            = errors.New("error.forbidden")
	ErrUnauthenticated      = errors.New("error.unauthorized")
	ErrValidation           = errors.New("error.validation")
	ErrProtected            = errors.New("error.protected")
	ErrUsernameTaken        = errors.New("error.username_taken")
	ErrProfileAlreadyExists = errors.New("error.profile_already_exists")
	ErrInvalidCredentials   = errors.New("error.invalid_credentials")
	ErrPasswordMismatch     = errors.New("error.password_mismatch")
	ErrTooManyAttempts      = errors.New("error.too_many_attempts")
)

// Login errors (fluxo de login com validação de perfil)
var (
	ErrInvalidLoginProfile = errors.New("error.login.invalid_profile")
	ErrWrongRole           = errors.New("error.login.wrong_role")
	ErrMultipleRoles       = errors.New("error.login.multiple_profiles")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
	ErrInvalidPreco = errors.New("error.invalid_preco")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation      = "/problems/validation-error"
	ProblemTypeNotFound        = "/problems/not-found"
	ProblemTypeConflict        = "/problems/conflict"
	ProblemTypeUnauthorized    = "/problems/unauthorized"
	ProblemTypeForbidden       = "/problems/forbidden"
	ProblemTypeProtected       = "/problems/protected-reference"
	ProblemTypeTooManyRequests = "/problems/too-many-requests"
	ProblemTypeInternal        = "/problems/internal-error"
	ProblemTypeBadRequest      = "/problems/bad-request"
)

// ValidationError agrega erros de campo. Fields mapeia nome do campo -> message ID.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError cria um ValidationError com um único campo
func NewValidationError(field, messageID string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: messageID}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + " (" + strings.Join(parts, "; ") + ")"
}

// Is permite errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ProtectedError indica que o registro ainda é referenciado e não pode ser excluído
type ProtectedError struct {
	Resource     string
	ReferencedBy string
	Count        int64
}

func (e *ProtectedError) Error() string {
	return fmt.Sprintf("%s is referenced by %d %s", e.Resource, e.Count, e.ReferencedBy)
}

// Is permite errors.Is(err, ErrProtected)
func (e *ProtectedError) Is(target error) bool {
	return target == ErrProtected
}

// WrongRoleError indica que o usuário não pertence ao grupo exigido pelo login
type WrongRoleError struct {
	Required string
}

func (e *WrongRoleError) Error() string {
	return ErrWrongRole.Error() + ": " + e.Required
}

// Is permite errors.Is(err, ErrWrongRole)
func (e *WrongRoleError) Is(target error) bool {
	return target == ErrWrongRole
}

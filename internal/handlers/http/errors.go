package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
	"github.com/rafabene/agendafoto-backend/internal/handlers/dto"
	"github.com/rafabene/agendafoto-backend/internal/handlers/middleware"
)

// RespondError traduz um erro de serviço na resposta HTTP correspondente.
// resource nomeia o registro nas mensagens de 404.
func RespondError(c *gin.Context, logger ports.Logger, resource string, err error) {
	var (
		validationErr *domainerrors.ValidationError
		protectedErr  *domainerrors.ProtectedError
		wrongRoleErr  *domainerrors.WrongRoleError
	)

	switch {
	case errors.As(err, &validationErr):
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, dto.DomainValidationErrors(c, validationErr)))
	case errors.As(err, &protectedErr):
		dto.WriteProblem(c, dto.ProtectedErrorResponseI18n(c, protectedErr))
	case errors.As(err, &wrongRoleErr):
		dto.WriteProblem(c, dto.ForbiddenErrorResponseI18n(c, domainerrors.ErrWrongRole.Error(),
			map[string]interface{}{"Group": wrongRoleErr.Required}))
	case errors.Is(err, domainerrors.ErrMultipleRoles):
		dto.WriteProblem(c, dto.ForbiddenErrorResponseI18n(c, domainerrors.ErrMultipleRoles.Error()))
	case errors.Is(err, domainerrors.ErrUnauthenticated):
		if middleware.WantsAPI(c) {
			Unauthorized(c)
			return
		}
		c.Redirect(http.StatusFound, middleware.LoginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		dto.WriteProblem(c, dto.UnauthorizedErrorResponseI18n(c, domainerrors.ErrInvalidCredentials.Error()))
	case errors.Is(err, domainerrors.ErrForbidden):
		dto.WriteProblem(c, dto.ForbiddenErrorResponseI18n(c, "error.forbidden.detail"))
	case errors.Is(err, domainerrors.ErrNotFound):
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, resource))
	case errors.Is(err, domainerrors.ErrUsernameTaken), errors.Is(err, domainerrors.ErrProfileAlreadyExists):
		dto.WriteProblem(c, dto.ConflictErrorResponseI18n(c, err.Error()))
	case errors.Is(err, domainerrors.ErrInvalidLoginProfile):
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, err.Error()))
	case errors.Is(err, domainerrors.ErrTooManyAttempts):
		dto.WriteProblem(c, dto.TooManyRequestsErrorResponseI18n(c))
	default:
		logger.Error("request failed",
			"request_id", c.GetString(middleware.RequestIDContextKey),
			"path", c.Request.URL.Path,
			"error", err,
		)
		_ = c.Error(err)
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
	}
}

// Unauthorized responde 401 para clientes de API sem login
func Unauthorized(c *gin.Context) {
	dto.WriteProblem(c, dto.UnauthorizedErrorResponseI18n(c, "error.unauthorized.detail"))
}

// respondBindingError responde 400 com os erros de campo do binding
func respondBindingError(c *gin.Context, err error) {
	dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(c, err)))
}

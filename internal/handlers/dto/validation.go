package dto

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/valueobjects"
)

var registerOnce sync.Once

// RegisterValidators instala no validator do Gin a regra "preco" e
// faz os erros de campo usarem o nome do formulário (tag form/json)
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("preco", func(fl validator.FieldLevel) bool {
			_, err := valueobjects.ParsePreco(fl.Field().String())
			return err == nil
		})
	})
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// BindingErrors converte erros do binding do Gin em erros de campo traduzidos.
// Erros de formato (JSON malformado, número inválido) viram um único erro sem campo.
func BindingErrors(c *gin.Context, err error) []ValidationError {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []ValidationError{{Message: T(c, "binding.invalid"), Tag: "invalid"}}
	}

	result := make([]ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: T(c, bindingMessageKey(fe.Tag()), map[string]interface{}{"Param": fe.Param()}),
			Tag:     fe.Tag(),
		})
	}
	return result
}

func bindingMessageKey(tag string) string {
	switch tag {
	case "required", "email", "url", "max", "gt", "datetime", "preco":
		return "binding." + tag
	default:
		return "binding.invalid"
	}
}

// DomainValidationErrors converte um ValidationError do domínio (campo -> message ID)
func DomainValidationErrors(c *gin.Context, verr *domainerrors.ValidationError) []ValidationError {
	fields := make([]string, 0, len(verr.Fields))
	for field := range verr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	result := make([]ValidationError, 0, len(fields))
	for _, field := range fields {
		messageID := verr.Fields[field]
		result = append(result, ValidationError{
			Field:   field,
			Message: T(c, messageID),
			Tag:     messageID,
		})
	}
	return result
}

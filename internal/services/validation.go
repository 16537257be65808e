package services

import (
	"errors"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
)

// minPasswordLength é o tamanho mínimo aceito para novas senhas
const minPasswordLength = 8

// toValidationError converte validation.Errors do ozzo em ValidationError do domínio.
// Outros erros passam inalterados.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	fields := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		fields[snakeCase(field)] = messageID(fieldErr)
	}
	return &domainerrors.ValidationError{Fields: fields}
}

// messageID usa o código do ozzo (ex.: validation_required) ou a mensagem do erro de domínio
func messageID(err error) string {
	var vErr validation.Error
	if errors.As(err, &vErr) {
		return vErr.Code()
	}
	return err.Error()
}

// snakeCase converte "ClienteID" em "cliente_id"
func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// validateNewPassword confere tamanho e confirmação da nova senha
func validateNewPassword(password, confirm string) error {
	fields := map[string]string{}
	if len([]rune(password)) < minPasswordLength {
		fields["password"] = "validation.password_too_short"
	}
	if password != confirm {
		fields["password_confirm"] = domainerrors.ErrPasswordMismatch.Error()
	}
	if len(fields) > 0 {
		return &domainerrors.ValidationError{Fields: fields}
	}
	return nil
}

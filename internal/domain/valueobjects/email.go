package valueobjects

import (
	"regexp"
	"strings"

	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object que garante que emails sejam sempre válidos.
// O valor zero representa "sem email" (o cadastro de usuário não o exige).
type Email struct {
	value string
}

// NewEmail cria um novo Email validado
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if !isValidEmail(email) {
		return Email{}, domainerrors.ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// NewOptionalEmail aceita string vazia como ausência de email
func NewOptionalEmail(email string) (Email, error) {
	if strings.TrimSpace(email) == "" {
		return Email{}, nil
	}
	return NewEmail(email)
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// IsZero indica ausência de email
func (e Email) IsZero() bool {
	return e.value == ""
}

func isValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}
	return emailPattern.MatchString(email)
}

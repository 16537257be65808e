package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Cliente é o perfil de cliente vinculado a um usuário (no máximo um por usuário)
type Cliente struct {
	ID        uint
	Nome      string
	Telefone  string
	UserID    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerID retorna o usuário dono do registro
func (c *Cliente) OwnerID() uint {
	return c.UserID
}

// Validate valida os campos editáveis
func (c *Cliente) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Nome, validation.Length(0, 100)),
		validation.Field(&c.Telefone, validation.Length(0, 20)),
		validation.Field(&c.UserID, validation.Required),
	)
}

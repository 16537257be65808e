package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Estudio é um local de sessões cadastrado por um usuário
type Estudio struct {
	ID              uint
	Nome            string
	Endereco        string
	Telefone        string
	CadastradoPorID uint
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OwnerID retorna o usuário que cadastrou o estúdio
func (e *Estudio) OwnerID() uint {
	return e.CadastradoPorID
}

// Validate valida os campos editáveis
func (e *Estudio) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Nome, validation.Required, validation.Length(1, 100)),
		validation.Field(&e.Endereco, validation.Length(0, 255)),
		validation.Field(&e.Telefone, validation.Length(0, 20)),
		validation.Field(&e.CadastradoPorID, validation.Required),
	)
}

package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Fotografo é o perfil de fotógrafo vinculado a um usuário
type Fotografo struct {
	ID            uint
	Nome          string
	Especialidade string
	Telefone      string
	FotoPerfil    string // URL, opcional
	UserID        uint
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OwnerID retorna o usuário dono do registro
func (f *Fotografo) OwnerID() uint {
	return f.UserID
}

// Validate valida os campos editáveis
func (f *Fotografo) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Nome, validation.Length(0, 100)),
		validation.Field(&f.Especialidade, validation.Length(0, 100)),
		validation.Field(&f.Telefone, validation.Length(0, 20)),
		validation.Field(&f.FotoPerfil, validation.Length(0, 200), is.URL),
		validation.Field(&f.UserID, validation.Required),
	)
}

package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// PortfolioItem é um link de foto no portfólio de um fotógrafo (sem upload)
type PortfolioItem struct {
	ID          uint
	FotografoID uint
	FotoURL     string
	Descricao   string
	CreatedAt   time.Time
}

// Validate valida os campos editáveis
func (p *PortfolioItem) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.FotografoID, validation.Required),
		validation.Field(&p.FotoURL, validation.Required, validation.Length(1, 200), is.URL),
		validation.Field(&p.Descricao, validation.Length(0, 255)),
	)
}

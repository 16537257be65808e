package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/rafabene/agendafoto-backend/internal/domain/valueobjects"
)

// HorarioLayout é o formato de horário das sessões
const HorarioLayout = "15:04"

// Sessao representa um agendamento de fotos
type Sessao struct {
	ID              uint
	Data            time.Time // apenas a data
	Horario         string    // HH:MM
	Duracao         int       // minutos
	Tipo            string
	Valor           decimal.Decimal
	Finalizado      bool
	ClienteID       uint
	FotografoID     uint
	EstudioID       *uint
	CadastradoPorID uint
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OwnerID retorna o usuário que cadastrou a sessão
func (s *Sessao) OwnerID() uint {
	return s.CadastradoPorID
}

// Validate valida regras de negócio da sessão
func (s *Sessao) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Data, validation.Required),
		validation.Field(&s.Horario, validation.Required, validation.Date(HorarioLayout)),
		validation.Field(&s.Duracao, validation.Required, validation.Min(1)),
		validation.Field(&s.Tipo, validation.Required, validation.Length(1, 50)),
		validation.Field(&s.Valor, validation.By(func(value interface{}) error {
			d, _ := value.(decimal.Decimal)
			return valueobjects.ValidatePreco(d)
		})),
		validation.Field(&s.ClienteID, validation.Required),
		validation.Field(&s.FotografoID, validation.Required),
		validation.Field(&s.CadastradoPorID, validation.Required),
	)
}

package valueobjects

import (
	"strings"

	"github.com/shopspring/decimal"

	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
)

// Limites da coluna numeric(7,2)
const (
	PrecoMaxDigits     = 7
	PrecoDecimalPlaces = 2
)

var precoLimit = decimal.New(1, PrecoMaxDigits-PrecoDecimalPlaces)

// ParsePreco converte texto ("250", "250.00", "250,00") em um preço válido
func ParsePreco(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, domainerrors.ErrInvalidPreco
	}
	if strings.Count(raw, ",") == 1 && !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domainerrors.ErrInvalidPreco
	}
	if err := ValidatePreco(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// ValidatePreco confere sinal, casas decimais e dígitos inteiros
func ValidatePreco(d decimal.Decimal) error {
	if d.IsNegative() {
		return domainerrors.ErrInvalidPreco
	}
	if d.Exponent() < -PrecoDecimalPlaces {
		return domainerrors.ErrInvalidPreco
	}
	if !d.LessThan(precoLimit) {
		return domainerrors.ErrInvalidPreco
	}
	return nil
}

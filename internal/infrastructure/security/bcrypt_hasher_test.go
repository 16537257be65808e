package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("confere a senha correta", func(t *testing.T) {
		hash, err := hasher.Hash("segredo123")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if hash == "segredo123" {
			t.Fatal("hash não pode ser a senha em texto puro")
		}
		if !hasher.Compare(hash, "segredo123") {
			t.Error("esperava que a senha correta fosse aceita")
		}
	})

	t.Run("rejeita senha errada e hash inválido", func(t *testing.T) {
		hash, _ := hasher.Hash("segredo123")
		if hasher.Compare(hash, "outra") {
			t.Error("esperava rejeitar senha errada")
		}
		if hasher.Compare("não-é-hash", "segredo123") {
			t.Error("esperava rejeitar hash inválido")
		}
	})
}

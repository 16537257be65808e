package ports

import (
	"context"
	"time"
)

// PasswordHasher gera e confere hashes de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// LoginThrottler limita tentativas de login por chave (usuário, IP)
type LoginThrottler interface {
	// Allow retorna false quando a chave está bloqueada ou excedeu o limite da janela
	Allow(ctx context.Context, key string) (bool, error)
	// RegisterFailure contabiliza uma falha e pode bloquear a chave
	RegisterFailure(ctx context.Context, key string) error
	// Reset limpa contadores após um login bem-sucedido
	Reset(ctx context.Context, key string) error
}

// TokenIssuer emite e verifica tokens de acesso para clientes da API
type TokenIssuer interface {
	Issue(userID uint) (token string, expiresAt time.Time, err error)
	Verify(token string) (userID uint, err error)
}

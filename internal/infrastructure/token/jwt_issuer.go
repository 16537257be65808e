package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "github.com/rafabene/agendafoto-backend/internal/domain/errors"
	"github.com/rafabene/agendafoto-backend/internal/domain/ports"
)

const issuer = "agendafoto"

// JWTIssuer implementa ports.TokenIssuer com HS256
type JWTIssuer struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTIssuer cria um emissor de tokens de acesso
func NewJWTIssuer(secret string, expiry time.Duration) ports.TokenIssuer {
	return &JWTIssuer{secret: []byte(secret), expiry: expiry, now: time.Now}
}

func (i *JWTIssuer) Issue(userID uint) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.expiry)

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify valida assinatura, emissor e expiração; qualquer falha é ErrUnauthenticated
func (i *JWTIssuer) Verify(tokenString string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, domainerrors.ErrUnauthenticated
	}
	if claims.Issuer != issuer {
		return 0, domainerrors.ErrUnauthenticated
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrUnauthenticated
	}
	return uint(id), nil
}

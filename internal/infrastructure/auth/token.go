// Package auth implements bearer token issuance and verification plus
// password hashing for the account workflows.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/espocity/league/internal/domain/user"
)

const tokenIssuer = "espocity-league"

// ErrInvalidToken signals a malformed, expired or tampered token.
var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}

// TokenManager mints and verifies HS256 signed bearer tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, fmt.Errorf("token secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (m *TokenManager) Issue(_ context.Context, principal user.Principal) (string, time.Time, error) {
	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: principal.Username,
		Admin:    principal.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.UserID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses the token and returns the principal it carries.
func (m *TokenManager) Verify(_ context.Context, raw string) (user.Principal, error) {
	parsed, err := jwt.ParseWithClaims(raw, &claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", token.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	parsedClaims, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || parsedClaims.Subject == "" {
		return user.Principal{}, ErrInvalidToken
	}

	return user.Principal{
		UserID:   parsedClaims.Subject,
		Username: parsedClaims.Username,
		Admin:    parsedClaims.Admin,
	}, nil
}

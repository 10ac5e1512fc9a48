package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/msommer/pickem/internal/dependencies/clock"
	"github.com/msommer/pickem/internal/model"
)

const tokenIssuer = "pickem"

// TokenIssuer signs and validates bearer tokens. HS256 with a shared
// secret; the clock is injected so expiry is testable.
type TokenIssuer struct {
	secret []byte
	clock  clock.Clock
}

// NewTokenIssuer creates a TokenIssuer with the given secret
func NewTokenIssuer(secret string, clock clock.Clock) (*TokenIssuer, error) {
	if len(secret) < 16 {
		return nil, errors.New("token secret must be at least 16 characters")
	}
	return &TokenIssuer{
		secret: []byte(secret),
		clock:  clock,
	}, nil
}

// Issue creates a signed token for the user, valid for the given duration
func (t *TokenIssuer) Issue(userID model.UserID, duration time.Duration) (string, error) {
	now := t.clock.Now()

	claims := jwt.RegisteredClaims{
		Subject:   string(userID),
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns the user ID it was issued for
func (t *TokenIssuer) Validate(tokenStr string) (model.UserID, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return model.UserID(claims.Subject), nil
}

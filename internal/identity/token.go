// Package identity verifies the bearer tokens issued by the identity
// provider and mints tokens for local development.
package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/thejurists/site-api/internal/core/domain"
)

const issuer = "thejurists"

var ErrInvalidToken = errors.New("invalid token")

// Issue signs an HS256 token whose subject is id.
func Issue(secret string, id domain.CallerIdentity, ttl time.Duration) (string, error) {
	if id.IsAnonymous() {
		return "", fmt.Errorf("issue token: %w", domain.ErrAnonymousCaller)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   string(id),
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of token and returns its subject.
func Verify(secret, token string) (domain.CallerIdentity, error) {
	var claims jwt.RegisteredClaims
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return domain.Anonymous, ErrInvalidToken
	}

	id := domain.CallerIdentity(strings.TrimSpace(claims.Subject))
	if id.IsAnonymous() {
		return domain.Anonymous, ErrInvalidToken
	}
	return id, nil
}

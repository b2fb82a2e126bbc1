package security

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bistrolabs/ordering-service/internal/ports"
)

// HMACSigner implements HS256 token signing/parsing against a server-held
// secret. The secret is held at adapter level so the application layer stays
// crypto-library agnostic.
type HMACSigner struct {
	secret []byte
}

// NewHMACSigner builds a signer from the configured shared secret.
func NewHMACSigner(secret string) (*HMACSigner, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &HMACSigner{secret: []byte(secret)}, nil
}

// NewEphemeralHMACSigner creates a random in-memory secret for local/dev use.
// Tokens signed with it do not survive a restart.
func NewEphemeralHMACSigner() (*HMACSigner, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return &HMACSigner{secret: []byte(hex.EncodeToString(buf))}, nil
}

type identityJWTClaims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func (s *HMACSigner) Sign(claims ports.IdentityClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, identityJWTClaims{
		Email: claims.Email,
		Role:  claims.Role,
		Name:  claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})
	return token.SignedString(s.secret)
}

func (s *HMACSigner) ParseAndValidate(raw string) (ports.IdentityClaims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &identityJWTClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ports.IdentityClaims{}, err
	}
	claims, ok := parsed.Claims.(*identityJWTClaims)
	if !ok || !parsed.Valid {
		return ports.IdentityClaims{}, errors.New("invalid token claims")
	}

	out := ports.IdentityClaims{
		Email: claims.Email,
		Role:  claims.Role,
		Name:  claims.Name,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return out, nil
}

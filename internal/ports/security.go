package ports

import "time"

// IdentityClaims is the identity payload embedded in a signed token.
// The role claim is informational only; authorization always re-reads the role
// from the user store.
type IdentityClaims struct {
	Email     string
	Role      string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenSigner issues and verifies signed session tokens.
// ParseAndValidate must reject bad signatures and expired tokens without
// distinguishing the failure modes to the caller.
type TokenSigner interface {
	Sign(claims IdentityClaims) (string, error)
	ParseAndValidate(raw string) (IdentityClaims, error)
}

package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bistrolabs/ordering-service/internal/domain"
	"github.com/bistrolabs/ordering-service/internal/ports"
)

// IssueToken signs whatever identity payload the caller presents. Claim
// semantics are not validated here; the role claim carries no authority (see
// AuthorizeAdmin). Expiry is fixed at issuance time + the configured TTL.
func (s *Service) IssueToken(_ context.Context, req IssueTokenRequest) (IssueTokenResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return IssueTokenResponse{}, err
	}

	now := s.nowFn()
	token, err := s.tokens.Sign(ports.IdentityClaims{
		Email:     email,
		Role:      req.Role,
		Name:      req.Name,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.TokenTTL),
	})
	if err != nil {
		return IssueTokenResponse{}, fmt.Errorf("sign token: %w", err)
	}
	return IssueTokenResponse{Token: token}, nil
}

// ValidateToken collapses every verification failure into ErrInvalidToken so
// callers cannot distinguish tampered from expired credentials.
func (s *Service) ValidateToken(_ context.Context, raw string) (ports.IdentityClaims, error) {
	claims, err := s.tokens.ParseAndValidate(raw)
	if err != nil {
		return ports.IdentityClaims{}, domain.ErrInvalidToken
	}
	return claims, nil
}

// AuthorizeAdmin re-reads the role from the user store on every call. Tokens
// can outlive role changes, so the embedded role claim is never consulted.
func (s *Service) AuthorizeAdmin(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		return err
	}
	if user.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// AdminStatus reports whether the stored record for email has the admin role.
// Callers may only query their own email.
func (s *Service) AdminStatus(ctx context.Context, actor ports.IdentityClaims, email string) (AdminStatusResponse, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return AdminStatusResponse{}, err
	}
	if actor.Email != email {
		return AdminStatusResponse{}, domain.ErrForbidden
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AdminStatusResponse{Admin: false}, nil
		}
		return AdminStatusResponse{}, err
	}
	return AdminStatusResponse{Admin: user.Role == domain.RoleAdmin}, nil
}

package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bistrolabs/ordering-service/internal/domain"
	"github.com/bistrolabs/ordering-service/internal/ports"
)

// Register stores a user record if none exists for the email. Registering an
// already-known email returns the stored record unchanged; a concurrent
// duplicate insert loses the race on the unique email index and takes the
// same no-op path.
func (s *Service) Register(ctx context.Context, req RegisterUserRequest) (RegisterUserResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return RegisterUserResponse{}, err
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return RegisterUserResponse{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	if existing, err := s.users.GetByEmail(ctx, email); err == nil {
		return RegisterUserResponse{User: existing, Created: false}, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return RegisterUserResponse{}, err
	}

	now := s.nowFn()
	user, err := s.users.Create(ctx, domain.User{
		UserID:    uuid.New(),
		Email:     email,
		Name:      strings.TrimSpace(req.Name),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			existing, getErr := s.users.GetByEmail(ctx, email)
			if getErr != nil {
				return RegisterUserResponse{}, getErr
			}
			return RegisterUserResponse{User: existing, Created: false}, nil
		}
		return RegisterUserResponse{}, err
	}
	return RegisterUserResponse{User: user, Created: true}, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) UpdateUser(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (int64, error) {
	if req.Name == nil && req.Role == nil {
		return 0, fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}
	if req.Role != nil {
		role := strings.ToLower(strings.TrimSpace(*req.Role))
		if role != domain.RoleUser && role != domain.RoleAdmin {
			return 0, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
		}
		req.Role = &role
	}
	updated, err := s.users.Update(ctx, userID, ports.UserUpdate{Name: req.Name, Role: req.Role})
	if err != nil {
		return 0, err
	}
	if updated == 0 {
		return 0, domain.ErrNotFound
	}
	return updated, nil
}

func (s *Service) DeleteUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	deleted, err := s.users.Delete(ctx, userID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, domain.ErrNotFound
	}
	return deleted, nil
}

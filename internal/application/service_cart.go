package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bistrolabs/ordering-service/internal/domain"
	"github.com/bistrolabs/ordering-service/internal/ports"
)

// ListCart returns the cart entries owned by email. Callers may only list
// their own cart.
func (s *Service) ListCart(ctx context.Context, actor ports.IdentityClaims, email string) ([]domain.CartEntry, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if actor.Email != email {
		return nil, domain.ErrForbidden
	}
	return s.carts.ListByEmail(ctx, email)
}

func (s *Service) AddCartEntry(ctx context.Context, actor ports.IdentityClaims, req AddCartEntryRequest) (domain.CartEntry, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return domain.CartEntry{}, err
	}
	if actor.Email != email {
		return domain.CartEntry{}, domain.ErrForbidden
	}
	if req.Name == "" {
		return domain.CartEntry{}, fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if req.Price < 0 {
		return domain.CartEntry{}, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	return s.carts.Insert(ctx, domain.CartEntry{
		EntryID:    uuid.New(),
		Email:      email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
		CreatedAt:  s.nowFn(),
	})
}

func (s *Service) RemoveCartEntry(ctx context.Context, entryID uuid.UUID) (int64, error) {
	deleted, err := s.carts.DeleteByID(ctx, entryID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, domain.ErrNotFound
	}
	return deleted, nil
}

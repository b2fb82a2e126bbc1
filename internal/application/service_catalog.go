package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bistrolabs/ordering-service/internal/domain"
)

// ListMenu serves the public catalog through the read-through cache. Cache
// failures degrade to a direct repository read; the menu is the only data
// cached across requests in this service.
func (s *Service) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	if s.menuCache != nil {
		if items, ok, err := s.menuCache.Get(ctx); err == nil && ok {
			return items, nil
		}
	}

	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.menuCache != nil {
		if err := s.menuCache.Put(ctx, items, s.cfg.MenuCacheTTL); err != nil {
			s.logger.WarnContext(ctx, "menu cache put failed",
				"operation", "list_menu",
				"error", err.Error(),
			)
		}
	}
	return items, nil
}

func (s *Service) CreateMenuItem(ctx context.Context, req CreateMenuItemRequest) (domain.MenuItem, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.MenuItem{}, fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if req.Price < 0 {
		return domain.MenuItem{}, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	item, err := s.menu.Insert(ctx, domain.MenuItem{
		ItemID:    uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Category:  strings.TrimSpace(req.Category),
		Recipe:    req.Recipe,
		Image:     req.Image,
		Price:     req.Price,
		CreatedAt: s.nowFn(),
	})
	if err != nil {
		return domain.MenuItem{}, err
	}
	s.invalidateMenuCache(ctx)
	return item, nil
}

func (s *Service) DeleteMenuItem(ctx context.Context, itemID uuid.UUID) (int64, error) {
	deleted, err := s.menu.Delete(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, domain.ErrNotFound
	}
	s.invalidateMenuCache(ctx)
	return deleted, nil
}

func (s *Service) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.List(ctx)
}

func (s *Service) CreateReview(ctx context.Context, req CreateReviewRequest) (domain.Review, error) {
	if strings.TrimSpace(req.Details) == "" {
		return domain.Review{}, fmt.Errorf("%w: review details are required", domain.ErrInvalidInput)
	}
	if req.Rating < 0 || req.Rating > 5 {
		return domain.Review{}, fmt.Errorf("%w: rating must be between 0 and 5", domain.ErrInvalidInput)
	}

	return s.reviews.Insert(ctx, domain.Review{
		ReviewID:  uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Details:   req.Details,
		Rating:    req.Rating,
		CreatedAt: s.nowFn(),
	})
}

func (s *Service) invalidateMenuCache(ctx context.Context) {
	if s.menuCache == nil {
		return
	}
	if err := s.menuCache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "menu cache invalidation failed",
			"operation", "invalidate_menu_cache",
			"error", err.Error(),
		)
	}
}

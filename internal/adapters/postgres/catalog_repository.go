package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bistrolabs/ordering-service/internal/domain"
)

type MenuRepository struct {
	db *gorm.DB
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	var rows []menuItemModel
	if err := r.db.WithContext(ctx).Order("category, name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.MenuItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainMenuItem(row))
	}
	return out, nil
}

func (r *MenuRepository) Insert(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	rec := menuItemModel{
		ItemID:    item.ItemID,
		Name:      item.Name,
		Category:  item.Category,
		Recipe:    item.Recipe,
		Image:     item.Image,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.MenuItem{}, err
	}
	return toDomainMenuItem(rec), nil
}

func (r *MenuRepository) Delete(ctx context.Context, itemID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("item_id = ?", itemID).Delete(&menuItemModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

type ReviewRepository struct {
	db *gorm.DB
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	var rows []reviewModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainReview(row))
	}
	return out, nil
}

func (r *ReviewRepository) Insert(ctx context.Context, review domain.Review) (domain.Review, error) {
	rec := reviewModel{
		ReviewID:  review.ReviewID,
		Name:      review.Name,
		Details:   review.Details,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Review{}, err
	}
	return toDomainReview(rec), nil
}

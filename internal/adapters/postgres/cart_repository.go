package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bistrolabs/ordering-service/internal/domain"
)

type CartRepository struct {
	db *gorm.DB
}

func (r *CartRepository) Insert(ctx context.Context, entry domain.CartEntry) (domain.CartEntry, error) {
	rec := cartEntryModel{
		EntryID:    entry.EntryID,
		Email:      entry.Email,
		MenuItemID: entry.MenuItemID,
		Name:       entry.Name,
		Image:      entry.Image,
		Price:      entry.Price,
		CreatedAt:  entry.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.CartEntry{}, domain.ErrConflict
		}
		return domain.CartEntry{}, err
	}
	return toDomainCartEntry(rec), nil
}

func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]domain.CartEntry, error) {
	var rows []cartEntryModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.CartEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainCartEntry(row))
	}
	return out, nil
}

func (r *CartRepository) DeleteByID(ctx context.Context, entryID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("entry_id = ?", entryID).Delete(&cartEntryModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// DeleteByIDs removes exactly the presented id set in one statement.
// Ids that match no row are skipped silently; the returned count tells the
// settlement coordinator how many rows were actually retracted.
func (r *CartRepository) DeleteByIDs(ctx context.Context, entryIDs []uuid.UUID) (int64, error) {
	if len(entryIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("entry_id IN ?", entryIDs).Delete(&cartEntryModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

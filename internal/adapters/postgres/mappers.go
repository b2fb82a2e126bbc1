package postgres

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bistrolabs/ordering-service/internal/domain"
)

func toDomainUser(row userModel) domain.User {
	return domain.User{
		UserID:    row.UserID,
		Email:     row.Email,
		Name:      row.Name,
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toDomainCartEntry(row cartEntryModel) domain.CartEntry {
	return domain.CartEntry{
		EntryID:    row.EntryID,
		Email:      row.Email,
		MenuItemID: row.MenuItemID,
		Name:       row.Name,
		Image:      row.Image,
		Price:      row.Price,
		CreatedAt:  row.CreatedAt,
	}
}

func toDomainPayment(row paymentModel) (domain.Payment, error) {
	var ids []uuid.UUID
	if row.CartEntryIDs != "" {
		if err := json.Unmarshal([]byte(row.CartEntryIDs), &ids); err != nil {
			return domain.Payment{}, fmt.Errorf("decode cart entry ids: %w", err)
		}
	}
	return domain.Payment{
		PaymentID:      row.PaymentID,
		Email:          row.Email,
		Amount:         row.Amount,
		TransactionRef: row.TransactionRef,
		CartEntryIDs:   ids,
		CreatedAt:      row.CreatedAt,
	}, nil
}

func encodeCartEntryIDs(ids []uuid.UUID) (string, error) {
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encode cart entry ids: %w", err)
	}
	return string(raw), nil
}

func toDomainMenuItem(row menuItemModel) domain.MenuItem {
	return domain.MenuItem{
		ItemID:    row.ItemID,
		Name:      row.Name,
		Category:  row.Category,
		Recipe:    row.Recipe,
		Image:     row.Image,
		Price:     row.Price,
		CreatedAt: row.CreatedAt,
	}
}

func toDomainReview(row reviewModel) domain.Review {
	return domain.Review{
		ReviewID:  row.ReviewID,
		Name:      row.Name,
		Details:   row.Details,
		Rating:    row.Rating,
		CreatedAt: row.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

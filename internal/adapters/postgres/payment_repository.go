package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/bistrolabs/ordering-service/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func (r *PaymentRepository) Insert(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	encodedIDs, err := encodeCartEntryIDs(payment.CartEntryIDs)
	if err != nil {
		return domain.Payment{}, err
	}
	rec := paymentModel{
		PaymentID:      payment.PaymentID,
		Email:          payment.Email,
		Amount:         payment.Amount,
		TransactionRef: payment.TransactionRef,
		CartEntryIDs:   encodedIDs,
		CreatedAt:      payment.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Payment{}, domain.ErrConflict
		}
		return domain.Payment{}, err
	}
	return payment, nil
}

func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	var rows []paymentModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Payment, 0, len(rows))
	for _, row := range rows {
		payment, err := toDomainPayment(row)
		if err != nil {
			return nil, err
		}
		out = append(out, payment)
	}
	return out, nil
}

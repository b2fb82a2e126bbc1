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

// CreateChargeIntent converts the price to processor minor units (truncating
// sub-cent fractions) and requests a card-payable intent. No persistence
// happens here; the intent is confirmed client-side with the returned secret.
func (s *Service) CreateChargeIntent(ctx context.Context, req CreateChargeIntentRequest) (CreateChargeIntentResponse, error) {
	amountMinor := int64(req.Price * 100)
	if amountMinor < 1 {
		return CreateChargeIntentResponse{}, domain.ErrAmountBelowMinimum
	}

	secret, err := s.charges.CreateIntent(ctx, amountMinor, s.cfg.Currency)
	if err != nil {
		return CreateChargeIntentResponse{}, fmt.Errorf("create charge intent: %w", err)
	}
	return CreateChargeIntentResponse{ClientSecret: secret}, nil
}

// Settle records the payment, then retracts the paid-for cart entries.
//
// The insert always runs first: a delete failure leaves a lingering cart entry
// (recoverable), while the reverse ordering could clear a cart for a payment
// that was never durably recorded. The two steps are sequential
// document-atomic operations, not one transaction; a delete failure after a
// successful insert is logged and surfaced in the response, never rolled back.
func (s *Service) Settle(ctx context.Context, req SettleRequest) (SettleResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return SettleResponse{}, err
	}
	if req.Amount <= 0 {
		return SettleResponse{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	txRef := strings.TrimSpace(req.TransactionRef)
	if txRef == "" {
		return SettleResponse{}, fmt.Errorf("%w: transaction ref is required", domain.ErrInvalidInput)
	}
	if len(req.CartEntryIDs) == 0 {
		return SettleResponse{}, fmt.Errorf("%w: cart entry ids are required", domain.ErrInvalidInput)
	}

	payment, err := s.payments.Insert(ctx, domain.Payment{
		PaymentID:      uuid.New(),
		Email:          email,
		Amount:         req.Amount,
		TransactionRef: txRef,
		CartEntryIDs:   req.CartEntryIDs,
		CreatedAt:      s.nowFn(),
	})
	if err != nil {
		return SettleResponse{}, fmt.Errorf("insert payment: %w", err)
	}

	deleted, err := s.carts.DeleteByIDs(ctx, req.CartEntryIDs)
	if err != nil {
		s.logger.ErrorContext(ctx, "cart retraction failed after payment insert",
			"operation", "settle",
			"outcome", "partial",
			"payment_id", payment.PaymentID,
			"email", email,
			"entry_count", len(req.CartEntryIDs),
			"error", err.Error(),
		)
		return SettleResponse{Payment: payment, DeletionError: err.Error()}, nil
	}
	return SettleResponse{Payment: payment, DeletedCount: deleted}, nil
}

// PaymentHistory returns the settlement audit trail for email. Non-admin
// callers may only read their own history; admin status is re-read from the
// store, not taken from the token.
func (s *Service) PaymentHistory(ctx context.Context, actor ports.IdentityClaims, email string) ([]domain.Payment, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if actor.Email != email {
		if authzErr := s.AuthorizeAdmin(ctx, actor.Email); authzErr != nil {
			if errors.Is(authzErr, domain.ErrForbidden) {
				return nil, domain.ErrForbidden
			}
			return nil, authzErr
		}
	}
	return s.payments.ListByEmail(ctx, email)
}

package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/bistrolabs/ordering-service/internal/domain"
)

// UserUpdate carries the partial fields a PATCH may change.
// Pointers distinguish "leave unchanged" from "set to zero value".
type UserUpdate struct {
	Name *string
	Role *string
}

// UserRepository defines persistence operations for credential records.
// Create must surface duplicate emails as domain.ErrConflict so registration
// can resolve concurrent duplicates to a single stored record.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, userID uuid.UUID, fields UserUpdate) (int64, error)
	Delete(ctx context.Context, userID uuid.UUID) (int64, error)
}

// CartRepository manages per-user cart entries.
// DeleteByIDs is the bulk retraction used by settlement; it reports the number
// of rows actually removed so partial matches are visible to the caller.
type CartRepository interface {
	Insert(ctx context.Context, entry domain.CartEntry) (domain.CartEntry, error)
	ListByEmail(ctx context.Context, email string) ([]domain.CartEntry, error)
	DeleteByID(ctx context.Context, entryID uuid.UUID) (int64, error)
	DeleteByIDs(ctx context.Context, entryIDs []uuid.UUID) (int64, error)
}

// PaymentRepository is append-only: payment records are never mutated after
// insertion, they form the settlement audit trail.
type PaymentRepository interface {
	Insert(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Payment, error)
}

// MenuRepository owns the public catalog.
type MenuRepository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Insert(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error)
	Delete(ctx context.Context, itemID uuid.UUID) (int64, error)
}

// ReviewRepository owns customer reviews.
type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Insert(ctx context.Context, review domain.Review) (domain.Review, error)
}

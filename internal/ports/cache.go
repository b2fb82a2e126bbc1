package ports

import (
	"context"
	"time"

	"github.com/bistrolabs/ordering-service/internal/domain"
)

// MenuCache is a read-through cache for the public menu listing.
// It is best-effort: a miss or cache failure falls back to the repository.
// Role and cart data are deliberately never cached; those reads must be fresh.
type MenuCache interface {
	Get(ctx context.Context) ([]domain.MenuItem, bool, error)
	Put(ctx context.Context, items []domain.MenuItem, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

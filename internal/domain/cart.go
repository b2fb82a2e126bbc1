package domain

import (
	"time"

	"github.com/google/uuid"
)

// CartEntry is one menu item placed in a user's cart.
// Entries are destroyed individually (explicit removal) or in bulk as a side
// effect of settlement.
type CartEntry struct {
	EntryID    uuid.UUID `json:"entry_id"`
	Email      string    `json:"email"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Image      string    `json:"image,omitempty"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}

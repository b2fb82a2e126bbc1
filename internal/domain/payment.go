package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payment is the audit record created exactly once per successful settlement.
// CartEntryIDs is exactly the id set the client presented at settlement time;
// the coordinator does not recompute it from current cart contents. The record
// is never mutated after creation.
type Payment struct {
	PaymentID      uuid.UUID   `json:"payment_id"`
	Email          string      `json:"email"`
	Amount         float64     `json:"amount"`
	TransactionRef string      `json:"transaction_ref"`
	CartEntryIDs   []uuid.UUID `json:"cart_entry_ids"`
	CreatedAt      time.Time   `json:"created_at"`
}

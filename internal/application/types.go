package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/bistrolabs/ordering-service/internal/domain"
)

type Config struct {
	ServiceName  string
	TokenTTL     time.Duration
	Currency     string
	MenuCacheTTL time.Duration
}

type IssueTokenRequest struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	Name  string `json:"name,omitempty"`
}

type IssueTokenResponse struct {
	Token string `json:"token"`
}

type RegisterUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// RegisterUserResponse reports whether a record was created or an existing one
// was left untouched; the duplicate path is a no-op, not an error.
type RegisterUserResponse struct {
	User    domain.User `json:"user"`
	Created bool        `json:"created"`
}

type UpdateUserRequest struct {
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty"`
}

type AddCartEntryRequest struct {
	Email      string    `json:"email"`
	MenuItemID uuid.UUID `json:"menuItemId"`
	Name       string    `json:"name"`
	Image      string    `json:"image,omitempty"`
	Price      float64   `json:"price"`
}

type CreateMenuItemRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Recipe   string  `json:"recipe,omitempty"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price"`
}

type CreateReviewRequest struct {
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

type CreateChargeIntentRequest struct {
	Price float64 `json:"price"`
}

type CreateChargeIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// SettleRequest is the client-presented settlement payload. CartEntryIDs is
// the explicit id set being paid for; the coordinator deletes exactly this set
// and records exactly this set, it never re-queries the cart.
type SettleRequest struct {
	Email          string      `json:"email"`
	Amount         float64     `json:"amount"`
	TransactionRef string      `json:"transactionRef"`
	CartEntryIDs   []uuid.UUID `json:"cartEntryIds"`
}

// SettleResponse carries both halves of the two-step settlement outcome.
// DeletionError is set when the cart retraction failed after the payment
// record was durably inserted; the payment is never rolled back in that case.
type SettleResponse struct {
	Payment       domain.Payment `json:"payment"`
	DeletedCount  int64          `json:"deletedCount"`
	DeletionError string         `json:"deletionError,omitempty"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

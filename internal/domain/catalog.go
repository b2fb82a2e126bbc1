package domain

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem is a purchasable dish in the public catalog.
type MenuItem struct {
	ItemID    uuid.UUID `json:"item_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Recipe    string    `json:"recipe,omitempty"`
	Image     string    `json:"image,omitempty"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is customer feedback shown on the public site.
type Review struct {
	ReviewID  uuid.UUID `json:"review_id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

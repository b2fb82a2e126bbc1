package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// RoleAdmin gates the privileged user-management operations.
	RoleAdmin = "admin"
	// RoleUser is the default role assigned at registration.
	RoleUser = "user"
)

// User is the credential record keyed by email.
// The stored role is the authoritative one; role claims inside tokens can outlive
// a promotion or demotion and are never trusted for authorization.
type User struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

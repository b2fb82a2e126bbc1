package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404/NOT_FOUND.
	ErrNotFound = errors.New("resource not found")
	// ErrMissingCredential signals a request that presented no bearer credential at all.
	// It is distinct from ErrInvalidToken so the gate can reject before any verification work.
	ErrMissingCredential = errors.New("missing credential")
	// ErrInvalidToken covers malformed, tampered and expired tokens alike.
	// Collapsing these hides token internals from callers probing the verifier.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrForbidden is returned when the freshly-read store role does not permit the operation.
	ErrForbidden = errors.New("insufficient role")
	// ErrAmountBelowMinimum rejects charge amounts that truncate to zero minor units.
	ErrAmountBelowMinimum = errors.New("amount below chargeable minimum")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
)

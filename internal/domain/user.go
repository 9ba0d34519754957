package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated dashboard user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	// APIToken authenticates the browser extension against the ingestion
	// endpoint. It is an opaque random value, re-displayed on the dashboard.
	APIToken  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

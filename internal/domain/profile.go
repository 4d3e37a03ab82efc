package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents an application user.
type Profile struct {
	ID             uuid.UUID
	Email          string
	DisplayName    string
	PasswordHash   string
	EmailConfirmed bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RefreshSession represents a hashed refresh token stored in the database.
type RefreshSession struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the session has been revoked.
func (s *RefreshSession) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired returns true if the session has expired relative to now.
func (s *RefreshSession) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

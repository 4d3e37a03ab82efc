package domain

import (
	"time"

	"github.com/google/uuid"
)

// Area is a top-level user-defined grouping of categories ("Work", "Health").
type Area struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category groups events within an area.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	AreaID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a single timestamped occurrence recorded under a category.
//
// DurationMinutes lives in its own column and is never folded into Extra.
// Extra is an opaque JSON payload passed through unmodified; if it happens to
// contain a "duration_minutes" key, the dedicated field still wins on read.
type Event struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	OccurredAt      time.Time
	Comment         string
	DurationMinutes *int
	Extra           map[string]any
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

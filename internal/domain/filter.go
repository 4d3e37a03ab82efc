package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventFilter contains filtering parameters for event queries.
//
// CategoryIDs and the date bounds become SQL predicates. Search is NOT part of
// the SQL query: it is applied to comments after retrieval, case-insensitively,
// and Count deliberately ignores it (the total may overstate matches when a
// search term is set).
type EventFilter struct {
	// CategoryIDs restricts events to the given categories. Empty means no
	// category restriction. An area filter is resolved by the caller into the
	// area's category IDs before it reaches the repository.
	CategoryIDs []uuid.UUID

	// DateFrom/DateTo bound occurred_at inclusively. nil means unbounded.
	DateFrom *time.Time
	DateTo   *time.Time

	// Limit/Offset implement offset pagination. Limit <= 0 means no limit.
	Limit  int
	Offset int
}

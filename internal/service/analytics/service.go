// Package analytics computes aggregate views over a user's recorded events.
//
// The aggregations themselves are pure functions over already-fetched events;
// the service only fetches the inputs and joins category and area names in
// memory, the same client-side join the events listing uses.
package analytics

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
)

// eventRepo defines the event repository interface needed by analytics service.
type eventRepo interface {
	Find(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error)
}

// categoryRepo defines the category repository interface needed by analytics service.
type categoryRepo interface {
	List(ctx context.Context, userID uuid.UUID, areaID *uuid.UUID) ([]domain.Category, error)
}

// areaRepo defines the area repository interface needed by analytics service.
type areaRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Area, error)
}

// Service implements analytics operations.
type Service struct {
	log        *slog.Logger
	events     eventRepo
	categories categoryRepo
	areas      areaRepo
}

// NewService creates a new analytics service instance.
func NewService(logger *slog.Logger, events eventRepo, categories categoryRepo, areas areaRepo) *Service {
	return &Service{
		log:        logger.With("service", "analytics"),
		events:     events,
		categories: categories,
		areas:      areas,
	}
}

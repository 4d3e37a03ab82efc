// Package events implements event recording, listing, bulk import and export.
package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/adapter/postgres/event"
	"github.com/okoshkin/lifelog-backend/internal/config"
	"github.com/okoshkin/lifelog-backend/internal/domain"
)

// eventRepo defines the event repository interface needed by events service.
type eventRepo interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error)
	Find(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error)
	Count(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) (int, error)
	Update(ctx context.Context, userID, eventID uuid.UUID, categoryID uuid.UUID, occurredAt time.Time, comment string, durationMinutes *int, extraPayload map[string]any) (*domain.Event, error)
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
	ListExportRows(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]event.ExportRow, error)
}

// categoryRepo defines the category repository interface needed by events service.
type categoryRepo interface {
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
	ListIDsByArea(ctx context.Context, userID, areaID uuid.UUID) ([]uuid.UUID, error)
}

// Service implements event operations.
type Service struct {
	log        *slog.Logger
	events     eventRepo
	categories categoryRepo
	cfg        config.EventsConfig
}

// NewService creates a new events service instance.
func NewService(logger *slog.Logger, events eventRepo, categories categoryRepo, cfg config.EventsConfig) *Service {
	return &Service{
		log:        logger.With("service", "events"),
		events:     events,
		categories: categories,
		cfg:        cfg,
	}
}

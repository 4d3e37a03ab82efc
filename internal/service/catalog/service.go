// Package catalog implements area and category management.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
)

// areaRepo defines the area repository interface needed by catalog service.
type areaRepo interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Area, error)
	GetByID(ctx context.Context, userID, areaID uuid.UUID) (*domain.Area, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Area, error)
	Rename(ctx context.Context, userID, areaID uuid.UUID, name string) (*domain.Area, error)
	Delete(ctx context.Context, userID, areaID uuid.UUID) error
}

// categoryRepo defines the category repository interface needed by catalog service.
type categoryRepo interface {
	Create(ctx context.Context, userID, areaID uuid.UUID, name string) (*domain.Category, error)
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
	List(ctx context.Context, userID uuid.UUID, areaID *uuid.UUID) ([]domain.Category, error)
	CountByArea(ctx context.Context, userID, areaID uuid.UUID) (int, error)
	Update(ctx context.Context, userID, categoryID uuid.UUID, name string, areaID uuid.UUID) (*domain.Category, error)
	Delete(ctx context.Context, userID, categoryID uuid.UUID) error
}

// eventRepo defines the event repository subset needed for delete guards.
type eventRepo interface {
	CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int, error)
}

// Service implements catalog operations.
type Service struct {
	log        *slog.Logger
	areas      areaRepo
	categories categoryRepo
	events     eventRepo
}

// NewService creates a new catalog service instance.
func NewService(logger *slog.Logger, areas areaRepo, categories categoryRepo, events eventRepo) *Service {
	return &Service{
		log:        logger.With("service", "catalog"),
		areas:      areas,
		categories: categories,
		events:     events,
	}
}

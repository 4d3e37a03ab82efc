package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
	"github.com/okoshkin/lifelog-backend/pkg/ctxutil"
)

// CreateArea creates a new area for the authenticated user.
// Returns ErrAlreadyExists if the user already has an area with that name.
func (s *Service) CreateArea(ctx context.Context, input CreateAreaInput) (*domain.Area, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	area, err := s.areas.Create(ctx, userID, input.Name)
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateArea: %w", err)
	}

	s.log.InfoContext(ctx, "area created",
		slog.String("user_id", userID.String()),
		slog.String("area_id", area.ID.String()))

	return area, nil
}

// ListAreas returns all areas of the authenticated user ordered by name.
func (s *Service) ListAreas(ctx context.Context) ([]domain.Area, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	areas, err := s.areas.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListAreas: %w", err)
	}
	return areas, nil
}

// GetArea returns a single area by ID.
func (s *Service) GetArea(ctx context.Context, areaID uuid.UUID) (*domain.Area, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	area, err := s.areas.GetByID(ctx, userID, areaID)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetArea: %w", err)
	}
	return area, nil
}

// RenameArea changes an area's name.
// Returns ErrAlreadyExists if the new name is already taken by another area.
func (s *Service) RenameArea(ctx context.Context, input RenameAreaInput) (*domain.Area, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	area, err := s.areas.Rename(ctx, userID, input.AreaID, input.Name)
	if err != nil {
		return nil, fmt.Errorf("catalog.RenameArea: %w", err)
	}
	return area, nil
}

// DeleteArea removes an area. An area that still owns categories cannot be
// deleted: the caller must move or delete the categories first.
// Returns ErrConflict in that case; both the area and its categories stay.
func (s *Service) DeleteArea(ctx context.Context, areaID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	count, err := s.categories.CountByArea(ctx, userID, areaID)
	if err != nil {
		return fmt.Errorf("catalog.DeleteArea count categories: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("area has %d categories: %w", count, domain.ErrConflict)
	}

	if err := s.areas.Delete(ctx, userID, areaID); err != nil {
		return fmt.Errorf("catalog.DeleteArea: %w", err)
	}

	s.log.InfoContext(ctx, "area deleted",
		slog.String("user_id", userID.String()),
		slog.String("area_id", areaID.String()))

	return nil
}

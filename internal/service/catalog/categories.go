package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
	"github.com/okoshkin/lifelog-backend/pkg/ctxutil"
)

// CreateCategory creates a new category inside one of the user's areas.
// Returns ErrValidation if the area does not exist or belongs to another user,
// ErrAlreadyExists if the area already has a category with that name.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The area must belong to the caller. A foreign area is reported as a
	// validation problem, not a not-found, so the response points at the field.
	if _, err := s.areas.GetByID(ctx, userID, input.AreaID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("area_id", "unknown area")
		}
		return nil, fmt.Errorf("catalog.CreateCategory check area: %w", err)
	}

	category, err := s.categories.Create(ctx, userID, input.AreaID, input.Name)
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateCategory: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.String("category_id", category.ID.String()))

	return category, nil
}

// ListCategories returns the user's categories, optionally limited to one area.
func (s *Service) ListCategories(ctx context.Context, areaID *uuid.UUID) ([]domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	categories, err := s.categories.List(ctx, userID, areaID)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListCategories: %w", err)
	}
	return categories, nil
}

// GetCategory returns a single category by ID.
func (s *Service) GetCategory(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	category, err := s.categories.GetByID(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetCategory: %w", err)
	}
	return category, nil
}

// UpdateCategory replaces a category's name and area. Moving between areas is
// allowed as long as the target area belongs to the caller.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.areas.GetByID(ctx, userID, input.AreaID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("area_id", "unknown area")
		}
		return nil, fmt.Errorf("catalog.UpdateCategory check area: %w", err)
	}

	category, err := s.categories.Update(ctx, userID, input.CategoryID, input.Name, input.AreaID)
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateCategory: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category. A category that still owns events cannot
// be deleted; ErrConflict is returned and both the category and its events stay.
func (s *Service) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	count, err := s.events.CountByCategory(ctx, userID, categoryID)
	if err != nil {
		return fmt.Errorf("catalog.DeleteCategory count events: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("category has %d events: %w", count, domain.ErrConflict)
	}

	if err := s.categories.Delete(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("catalog.DeleteCategory: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()))

	return nil
}

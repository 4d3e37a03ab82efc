package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
	"github.com/okoshkin/lifelog-backend/pkg/ctxutil"
)

// Update replaces every mutable field of an event with the input values.
// Fields absent from the input are cleared, not kept: a nil DurationMinutes
// stores NULL and a nil Extra drops the payload.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.categories.GetByID(ctx, userID, input.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("category_id", "unknown category")
		}
		return nil, fmt.Errorf("events.Update check category: %w", err)
	}

	updated, err := s.events.Update(ctx, userID, input.EventID,
		input.CategoryID, input.OccurredAt, input.Comment, input.DurationMinutes, input.Extra)
	if err != nil {
		return nil, fmt.Errorf("events.Update: %w", err)
	}

	return updated, nil
}

// Delete removes an event. Events have no children, so there is no guard.
func (s *Service) Delete(ctx context.Context, eventID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.events.Delete(ctx, userID, eventID); err != nil {
		return fmt.Errorf("events.Delete: %w", err)
	}
	return nil
}

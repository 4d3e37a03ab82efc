package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
	"github.com/okoshkin/lifelog-backend/pkg/ctxutil"
)

// Add records a new event.
// Returns ErrValidation if the category does not exist or belongs to another
// user, or if duration_minutes is negative.
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.Event, error) {
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
		return nil, fmt.Errorf("events.Add check category: %w", err)
	}

	now := time.Now()
	created, err := s.events.Create(ctx, &domain.Event{
		ID:              uuid.New(),
		UserID:          userID,
		CategoryID:      input.CategoryID,
		OccurredAt:      input.OccurredAt,
		Comment:         input.Comment,
		DurationMinutes: input.DurationMinutes,
		Extra:           input.Extra,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("events.Add: %w", err)
	}

	s.log.InfoContext(ctx, "event recorded",
		slog.String("user_id", userID.String()),
		slog.String("event_id", created.ID.String()))

	return created, nil
}

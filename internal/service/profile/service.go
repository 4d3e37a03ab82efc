// Package profile exposes the authenticated user's own account data.
package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
	"github.com/okoshkin/lifelog-backend/pkg/ctxutil"
)

const maxDisplayNameLength = 128

// profileRepo defines the profile repository interface needed by profile service.
type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (*domain.Profile, error)
}

// Service implements profile operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
	}
}

// Get returns the authenticated user's profile.
func (s *Service) Get(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Get: %w", err)
	}
	return p, nil
}

// UpdateDisplayName sets the user's display name.
func (s *Service) UpdateDisplayName(ctx context.Context, displayName string) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, domain.NewValidationError("display_name", "required")
	}
	if utf8.RuneCountInString(displayName) > maxDisplayNameLength {
		return nil, domain.NewValidationError("display_name", "too long")
	}

	p, err := s.profiles.UpdateDisplayName(ctx, userID, displayName)
	if err != nil {
		return nil, fmt.Errorf("profile.UpdateDisplayName: %w", err)
	}

	s.log.InfoContext(ctx, "display name updated", slog.String("user_id", userID.String()))

	return p, nil
}

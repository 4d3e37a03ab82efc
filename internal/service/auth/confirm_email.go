package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/okoshkin/lifelog-backend/internal/auth"
	"github.com/okoshkin/lifelog-backend/internal/domain"
)

// ConfirmEmail redeems a confirmation token and unlocks the account for login.
// The token is single-use; redeeming it twice returns ErrNotFound.
func (s *Service) ConfirmEmail(ctx context.Context, input ConfirmEmailInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.profiles.ConfirmByToken(ctx, auth.HashToken(input.Token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.ConfirmEmail: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("auth.ConfirmEmail: %w", err)
	}

	s.log.InfoContext(ctx, "email confirmed",
		slog.String("user_id", profile.ID.String()))

	return profile, nil
}

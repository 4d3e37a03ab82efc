package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/okoshkin/lifelog-backend/internal/domain"
	"github.com/okoshkin/lifelog-backend/pkg/ctxutil"
)

// Logout revokes all refresh sessions for the authenticated user.
// Logging out with no active sessions is not an error.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

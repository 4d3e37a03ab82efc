package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/okoshkin/lifelog-backend/internal/auth"
	"github.com/okoshkin/lifelog-backend/internal/domain"
)

// Register creates a new user with email + password. The account starts
// unconfirmed; login is blocked until the confirmation token is redeemed.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.DisplayName = strings.TrimSpace(input.DisplayName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	rawConfirm, hashConfirm, err := auth.GenerateConfirmationToken()
	if err != nil {
		return nil, fmt.Errorf("auth.Register confirmation token: %w", err)
	}

	displayName := input.DisplayName
	if displayName == "" {
		displayName = input.Email[:strings.Index(input.Email, "@")]
	}

	// Email uniqueness is enforced by the DB constraint.
	var created *domain.Profile
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		p := &domain.Profile{
			ID:           uuid.New(),
			Email:        input.Email,
			DisplayName:  displayName,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		created, err = s.profiles.Create(txCtx, p, hashConfirm)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()))

	return &RegisterResult{
		Profile:           created,
		ConfirmationToken: rawConfirm,
	}, nil
}

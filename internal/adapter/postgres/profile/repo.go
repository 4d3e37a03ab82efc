// Package profile implements the user Profile repository using PostgreSQL.
package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/okoshkin/lifelog-backend/internal/adapter/postgres"
	"github.com/okoshkin/lifelog-backend/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const profileColumns = "id, email, display_name, password_hash, email_confirmed, created_at, updated_at"

const (
	createSQL = `
INSERT INTO users (id, email, display_name, password_hash, email_confirmed, confirmation_token, created_at, updated_at)
VALUES ($1, $2, $3, $4, false, $5, $6, $6)
RETURNING ` + profileColumns

	getByIDSQL = `
SELECT ` + profileColumns + ` FROM users WHERE id = $1`

	getByEmailSQL = `
SELECT ` + profileColumns + ` FROM users WHERE lower(email) = lower($1)`

	confirmEmailSQL = `
UPDATE users
SET email_confirmed = true, confirmation_token = NULL, updated_at = now()
WHERE confirmation_token = $1 AND email_confirmed = false
RETURNING ` + profileColumns

	updateDisplayNameSQL = `
UPDATE users
SET display_name = $2, updated_at = now()
WHERE id = $1
RETURNING ` + profileColumns
)

// Create inserts a new user with the hashed confirmation token.
// Returns domain.ErrAlreadyExists if the email is already registered.
func (r *Repo) Create(ctx context.Context, p *domain.Profile, confirmationTokenHash string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		p.ID, p.Email, p.DisplayName, p.PasswordHash,
		pgtype.Text{String: confirmationTokenHash, Valid: confirmationTokenHash != ""},
		time.Now().UTC())

	created, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", p.ID)
	}

	return created, nil
}

// GetByID returns a profile by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProfile(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return p, nil
}

// GetByEmail returns a profile by email.
// Returns domain.ErrNotFound if no user has that email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProfile(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return p, nil
}

// ConfirmByToken flips email_confirmed for the user holding the hashed
// confirmation token, clearing the token so it cannot be replayed.
// Returns domain.ErrNotFound if no unconfirmed user holds the token.
func (r *Repo) ConfirmByToken(ctx context.Context, tokenHash string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProfile(q.QueryRow(ctx, confirmEmailSQL, tokenHash))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return p, nil
}

// UpdateDisplayName replaces the user's display name.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProfile(q.QueryRow(ctx, updateDisplayNameSQL, id, displayName))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return p, nil
}

// scanProfile scans a single row into a domain.Profile.
func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	if err := row.Scan(&p.ID, &p.Email, &p.DisplayName, &p.PasswordHash,
		&p.EmailConfirmed, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

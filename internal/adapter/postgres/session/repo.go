// Package session implements the refresh-session repository using PostgreSQL.
// Sessions are looked up by token hash only: the raw token never reaches the
// database, and GetByHash is the single query in the system without an
// explicit user_id predicate (the hash is unguessable).
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/okoshkin/lifelog-backend/internal/adapter/postgres"
	"github.com/okoshkin/lifelog-backend/internal/domain"
)

// Repo provides refresh-session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	createSQL = `
INSERT INTO refresh_sessions (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)`

	getByHashSQL = `
SELECT id, user_id, token_hash, expires_at, created_at, revoked_at
FROM refresh_sessions
WHERE token_hash = $1 AND revoked_at IS NULL`

	revokeByIDSQL = `
UPDATE refresh_sessions SET revoked_at = now()
WHERE id = $1 AND revoked_at IS NULL`

	revokeAllByUserSQL = `
UPDATE refresh_sessions SET revoked_at = now()
WHERE user_id = $1 AND revoked_at IS NULL`

	deleteExpiredSQL = `
DELETE FROM refresh_sessions WHERE expires_at < now() OR revoked_at IS NOT NULL`
)

// Create stores a new refresh session.
func (r *Repo) Create(ctx context.Context, s *domain.RefreshSession) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if _, err := q.Exec(ctx, createSQL, id, s.UserID, s.TokenHash, s.ExpiresAt, createdAt); err != nil {
		return postgres.MapError(err, "refresh_session", id)
	}

	return nil
}

// GetByHash returns the active (non-revoked) session holding the token hash.
// Returns domain.ErrNotFound when absent; the caller treats that as possible
// token reuse.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.RefreshSession
	err := q.QueryRow(ctx, getByHashSQL, tokenHash).
		Scan(&s.ID, &s.UserID, &s.TokenHash, &s.ExpiresAt, &s.CreatedAt, &s.RevokedAt)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_session", uuid.Nil)
	}

	return &s, nil
}

// RevokeByID marks a single session revoked. Already-revoked is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, revokeByIDSQL, id); err != nil {
		return postgres.MapError(err, "refresh_session", id)
	}

	return nil
}

// RevokeAllByUser marks all of the user's active sessions revoked.
// Revoking zero sessions is not an error (logout is idempotent).
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, revokeAllByUserSQL, userID); err != nil {
		return postgres.MapError(err, "refresh_session", userID)
	}

	return nil
}

// DeleteExpired removes all expired or revoked sessions.
// Returns the number of rows deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

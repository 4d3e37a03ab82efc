// Package area implements the Area repository using PostgreSQL.
// Every query carries the owning user's ID explicitly; the same constraint is
// enforced independently by the row-level security policies installed by
// migration.
package area

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/okoshkin/lifelog-backend/internal/adapter/postgres"
	"github.com/okoshkin/lifelog-backend/internal/domain"
)

// Repo provides area persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new area repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	createSQL = `
INSERT INTO areas (id, user_id, name, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING id, user_id, name, created_at, updated_at`

	getByIDSQL = `
SELECT id, user_id, name, created_at, updated_at
FROM areas
WHERE id = $1 AND user_id = $2`

	listByUserSQL = `
SELECT id, user_id, name, created_at, updated_at
FROM areas
WHERE user_id = $1
ORDER BY name`

	renameSQL = `
UPDATE areas
SET name = $3, updated_at = now()
WHERE id = $1 AND user_id = $2`

	deleteSQL = `DELETE FROM areas WHERE id = $1 AND user_id = $2`
)

// Create inserts a new area and returns the persisted domain.Area.
// Returns domain.ErrAlreadyExists if the user already has an area with the same name.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Area, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL, uuid.New(), userID, name, time.Now().UTC())
	a, err := scanArea(row)
	if err != nil {
		return nil, postgres.MapError(err, "area", uuid.Nil)
	}

	return a, nil
}

// GetByID returns an area by primary key with user_id filter.
// Returns domain.ErrNotFound if the area does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, areaID uuid.UUID) (*domain.Area, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanArea(q.QueryRow(ctx, getByIDSQL, areaID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "area", areaID)
	}

	return a, nil
}

// List returns all areas for a user ordered by name.
// Returns an empty slice (not nil) when the user has no areas.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Area, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()

	areas := []domain.Area{}
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("list areas: %w", err)
		}
		areas = append(areas, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}

	return areas, nil
}

// Rename updates the area's name.
// Returns domain.ErrNotFound if the area does not exist or belongs to another user.
func (r *Repo) Rename(ctx context.Context, userID, areaID uuid.UUID, name string) (*domain.Area, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, renameSQL, areaID, userID, name)
	if err != nil {
		return nil, postgres.MapError(err, "area", areaID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("area %s: %w", areaID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, userID, areaID)
}

// Delete removes an area. The categories-present guard lives in the catalog
// service; this method issues the bare delete.
// Returns domain.ErrNotFound if the area does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, areaID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, areaID, userID)
	if err != nil {
		return postgres.MapError(err, "area", areaID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("area %s: %w", areaID, domain.ErrNotFound)
	}

	return nil
}

// scanArea scans a single row into a domain.Area.
func scanArea(row pgx.Row) (*domain.Area, error) {
	var a domain.Area
	if err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

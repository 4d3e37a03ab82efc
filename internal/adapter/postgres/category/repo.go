// Package category implements the Category repository using PostgreSQL.
// It also serves the two supporting queries the rest of the system leans on:
// the category-IDs-for-area lookup that backs area filtering of events, and
// the per-area count that guards area deletion.
package category

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

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	createSQL = `
INSERT INTO categories (id, user_id, area_id, name, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id, user_id, area_id, name, created_at, updated_at`

	getByIDSQL = `
SELECT id, user_id, area_id, name, created_at, updated_at
FROM categories
WHERE id = $1 AND user_id = $2`

	listByUserSQL = `
SELECT id, user_id, area_id, name, created_at, updated_at
FROM categories
WHERE user_id = $1
ORDER BY name`

	listByAreaSQL = `
SELECT id, user_id, area_id, name, created_at, updated_at
FROM categories
WHERE user_id = $1 AND area_id = $2
ORDER BY name`

	listIDsByAreaSQL = `
SELECT id FROM categories WHERE user_id = $1 AND area_id = $2`

	countByAreaSQL = `
SELECT count(*) FROM categories WHERE user_id = $1 AND area_id = $2`

	updateSQL = `
UPDATE categories
SET name = $3, area_id = $4, updated_at = now()
WHERE id = $1 AND user_id = $2`

	deleteSQL = `DELETE FROM categories WHERE id = $1 AND user_id = $2`
)

// Create inserts a new category under an area.
// Returns domain.ErrAlreadyExists if the area already has a category with the
// same name, domain.ErrNotFound if the area does not exist.
func (r *Repo) Create(ctx context.Context, userID, areaID uuid.UUID, name string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL, uuid.New(), userID, areaID, name, time.Now().UTC())
	c, err := scanCategory(row)
	if err != nil {
		return nil, postgres.MapError(err, "category", uuid.Nil)
	}

	return c, nil
}

// GetByID returns a category by primary key with user_id filter.
// Returns domain.ErrNotFound if the category does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(q.QueryRow(ctx, getByIDSQL, categoryID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "category", categoryID)
	}

	return c, nil
}

// List returns categories for a user ordered by name. When areaID is non-nil
// only that area's categories are returned.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, areaID *uuid.UUID) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		rows pgx.Rows
		err  error
	)
	if areaID != nil {
		rows, err = q.Query(ctx, listByAreaSQL, userID, *areaID)
	} else {
		rows, err = q.Query(ctx, listByUserSQL, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

// ListIDsByArea returns the IDs of all categories under an area.
// Returns an empty slice (not nil) when the area has no categories.
func (r *Repo) ListIDsByArea(ctx context.Context, userID, areaID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listIDsByAreaSQL, userID, areaID)
	if err != nil {
		return nil, fmt.Errorf("list category ids by area: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list category ids by area: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list category ids by area: %w", err)
	}

	return ids, nil
}

// CountByArea returns the number of categories under an area.
func (r *Repo) CountByArea(ctx context.Context, userID, areaID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByAreaSQL, userID, areaID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories by area: %w", err)
	}

	return count, nil
}

// Update replaces the category's name and area assignment.
// Returns domain.ErrNotFound if the category does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, categoryID uuid.UUID, name string, areaID uuid.UUID) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateSQL, categoryID, userID, name, areaID)
	if err != nil {
		return nil, postgres.MapError(err, "category", categoryID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, userID, categoryID)
}

// Delete removes a category. The events-present guard lives in the catalog
// service; this method issues the bare delete.
// Returns domain.ErrNotFound if the category does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, categoryID, userID)
	if err != nil {
		return postgres.MapError(err, "category", categoryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
	}

	return nil
}

// scanCategory scans a single row into a domain.Category.
func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.UserID, &c.AreaID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

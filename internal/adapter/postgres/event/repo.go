// Package event implements the Event repository using PostgreSQL.
// Listing and counting share one squirrel-built predicate set so the two can
// never drift apart; the free-text comment search is deliberately NOT part of
// that predicate set (see domain.EventFilter).
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/okoshkin/lifelog-backend/internal/adapter/postgres"
	"github.com/okoshkin/lifelog-backend/internal/domain"
)

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// psql is the shared squirrel builder with PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const eventColumns = "id, user_id, category_id, occurred_at, comment, duration_minutes, extra, created_at, updated_at"

const (
	createSQL = `
INSERT INTO events (id, user_id, category_id, occurred_at, comment, duration_minutes, extra, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + eventColumns

	getByIDSQL = `
SELECT ` + eventColumns + `
FROM events
WHERE id = $1 AND user_id = $2`

	updateSQL = `
UPDATE events
SET category_id = $3, occurred_at = $4, comment = $5, duration_minutes = $6, extra = $7, updated_at = now()
WHERE id = $1 AND user_id = $2`

	deleteSQL = `DELETE FROM events WHERE id = $1 AND user_id = $2`

	countByCategorySQL = `
SELECT count(*) FROM events WHERE user_id = $1 AND category_id = $2`

	exportRowsSQL = `
SELECT e.comment, e.occurred_at, c.name, a.name, e.duration_minutes
FROM events e
JOIN categories c ON e.category_id = c.id
JOIN areas a ON c.area_id = a.id
WHERE e.user_id = $1 AND e.occurred_at >= $2 AND e.occurred_at <= $3
ORDER BY e.occurred_at DESC, e.id DESC
LIMIT $4`
)

// Create inserts a new event and returns the persisted domain.Event.
// Returns domain.ErrNotFound if the category does not exist (FK violation).
func (r *Repo) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	extra, err := extraToJSON(event.Extra)
	if err != nil {
		return nil, fmt.Errorf("encode extra: %w", err)
	}

	row := q.QueryRow(ctx, createSQL,
		event.ID, event.UserID, event.CategoryID, event.OccurredAt,
		event.Comment, event.DurationMinutes, extra, time.Now().UTC())

	created, err := scanEvent(row)
	if err != nil {
		return nil, postgres.MapError(err, "event", event.ID)
	}

	return created, nil
}

// GetByID returns an event by primary key with user_id filter.
// Returns domain.ErrNotFound if the event does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEvent(q.QueryRow(ctx, getByIDSQL, eventID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "event", eventID)
	}

	return e, nil
}

// Find returns events matching the filter, ordered by occurred_at descending
// (newest first; id breaks ties for a stable order).
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) Find(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.
		Select("id", "user_id", "category_id", "occurred_at", "comment", "duration_minutes", "extra", "created_at", "updated_at").
		From("events").
		Where(filterConditions(userID, filter)).
		OrderBy("occurred_at DESC", "id DESC")

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find query: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("find events: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}

	return events, nil
}

// Count returns the number of events matching the filter's SQL predicates.
// Limit and Offset are ignored.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sqlStr, args, err := psql.
		Select("count(*)").
		From("events").
		Where(filterConditions(userID, filter)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}

	return count, nil
}

// Update fully replaces the event's mutable fields. A nil durationMinutes or
// extra stores NULL; omission means "clear", not "leave unchanged".
// Returns domain.ErrNotFound if the event does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, eventID uuid.UUID, categoryID uuid.UUID, occurredAt time.Time, comment string, durationMinutes *int, extraPayload map[string]any) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	extra, err := extraToJSON(extraPayload)
	if err != nil {
		return nil, fmt.Errorf("encode extra: %w", err)
	}

	tag, err := q.Exec(ctx, updateSQL, eventID, userID, categoryID, occurredAt, comment, durationMinutes, extra)
	if err != nil {
		return nil, postgres.MapError(err, "event", eventID)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, userID, eventID)
}

// Delete removes an event. Events have no dependent children, so there is no
// guard anywhere on this path.
// Returns domain.ErrNotFound if the event does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, eventID, userID)
	if err != nil {
		return postgres.MapError(err, "event", eventID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// CountByCategory returns the number of events under a category.
func (r *Repo) CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByCategorySQL, userID, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count events by category: %w", err)
	}

	return count, nil
}

// ExportRow is one line of the export table: the event joined with its
// category and area names.
type ExportRow struct {
	Comment         string
	OccurredAt      time.Time
	CategoryName    string
	AreaName        string
	DurationMinutes *int
}

// ListExportRows returns events in [from, to] joined with category and area
// names, newest first, capped at limit rows.
func (r *Repo) ListExportRows(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]ExportRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, exportRowsSQL, userID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("list export rows: %w", err)
	}
	defer rows.Close()

	result := []ExportRow{}
	for rows.Next() {
		var er ExportRow
		if err := rows.Scan(&er.Comment, &er.OccurredAt, &er.CategoryName, &er.AreaName, &er.DurationMinutes); err != nil {
			return nil, fmt.Errorf("list export rows: %w", err)
		}
		result = append(result, er)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list export rows: %w", err)
	}

	return result, nil
}

// filterConditions translates an EventFilter into squirrel predicates.
// The user_id constraint is always present; everything else is optional.
func filterConditions(userID uuid.UUID, filter domain.EventFilter) sq.And {
	conds := sq.And{sq.Eq{"user_id": userID}}

	if len(filter.CategoryIDs) > 0 {
		conds = append(conds, sq.Eq{"category_id": filter.CategoryIDs})
	}
	if filter.DateFrom != nil {
		conds = append(conds, sq.GtOrEq{"occurred_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		conds = append(conds, sq.LtOrEq{"occurred_at": *filter.DateTo})
	}

	return conds
}

// scanEvent scans a single row into a domain.Event.
func scanEvent(row pgx.Row) (*domain.Event, error) {
	var (
		e     domain.Event
		extra []byte
	)
	if err := row.Scan(&e.ID, &e.UserID, &e.CategoryID, &e.OccurredAt, &e.Comment,
		&e.DurationMinutes, &extra, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}

	if len(extra) > 0 {
		if err := json.Unmarshal(extra, &e.Extra); err != nil {
			return nil, fmt.Errorf("decode extra: %w", err)
		}
	}

	return &e, nil
}

// extraToJSON encodes the extra payload for a jsonb column (nil → NULL).
func extraToJSON(extra map[string]any) ([]byte, error) {
	if extra == nil {
		return nil, nil
	}
	return json.Marshal(extra)
}

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okoshkin/lifelog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a confirmed user with a bcrypt-shaped placeholder hash.
// Returns a filled domain.Profile.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	profile := domain.Profile{
		ID:             uuid.New(),
		Email:          "testuser-" + suffix + "@example.com",
		DisplayName:    "Test User " + suffix,
		PasswordHash:   "$2a$10$testtesttesttesttesttesttesttesttesttesttesttesttests",
		EmailConfirmed: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, display_name, password_hash, email_confirmed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		profile.ID, profile.Email, profile.DisplayName, profile.PasswordHash, profile.EmailConfirmed,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return profile
}

// SeedArea creates an area for the given user.
func SeedArea(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.Area {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	area := domain.Area{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO areas (id, user_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		area.ID, area.UserID, area.Name, area.CreatedAt, area.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArea insert: %v", err)
	}

	return area
}

// SeedCategory creates a category inside the given area.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, userID, areaID uuid.UUID, name string) domain.Category {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	category := domain.Category{
		ID:        uuid.New(),
		UserID:    userID,
		AreaID:    areaID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (id, user_id, area_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID, category.UserID, category.AreaID, category.Name, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	return category
}

// SeedEvent creates an event in the given category with no duration and no extra payload.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, userID, categoryID uuid.UUID, occurredAt time.Time) domain.Event {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	event := domain.Event{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		OccurredAt: occurredAt.UTC().Truncate(time.Microsecond),
		Comment:    "seeded event " + uniqueSuffix(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, user_id, category_id, occurred_at, comment, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.ID, event.UserID, event.CategoryID, event.OccurredAt, event.Comment, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert: %v", err)
	}

	return event
}

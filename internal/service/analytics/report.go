package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
	"github.com/okoshkin/lifelog-backend/pkg/ctxutil"
)

// BuildReport fetches the user's events matching the filters and aggregates
// them. The area filter is resolved through the category list that is fetched
// for the name join anyway; an area without categories yields an empty report.
func (s *Service) BuildReport(ctx context.Context, input Input) (*Report, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("analytics.BuildReport list categories: %w", err)
	}
	areas, err := s.areas.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("analytics.BuildReport list areas: %w", err)
	}

	categoryNames := make(map[uuid.UUID]string, len(categories))
	categoryAreas := make(map[uuid.UUID]uuid.UUID, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
		categoryAreas[c.ID] = c.AreaID
	}
	areaNames := make(map[uuid.UUID]string, len(areas))
	for _, a := range areas {
		areaNames[a.ID] = a.Name
	}

	filter := domain.EventFilter{
		DateFrom: input.From,
		DateTo:   input.To,
	}
	switch {
	case input.CategoryID != nil:
		filter.CategoryIDs = []uuid.UUID{*input.CategoryID}
	case input.AreaID != nil:
		var ids []uuid.UUID
		for _, c := range categories {
			if c.AreaID == *input.AreaID {
				ids = append(ids, c.ID)
			}
		}
		if len(ids) == 0 {
			return emptyReport(), nil
		}
		filter.CategoryIDs = ids
	}

	events, err := s.events.Find(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("analytics.BuildReport: %w", err)
	}

	report := &Report{
		TotalEvents: len(events),
		ByDay:       CountByDay(events),
		ByMonth:     CountByMonth(events),
		ByCategory:  CountByCategory(events, categoryNames),
		ByArea:      CountByArea(events, categoryAreas, areaNames),
		Weekday:     WeekdayHistogram(events),
	}
	for _, e := range events {
		if e.DurationMinutes != nil {
			report.TotalDurationMinutes += *e.DurationMinutes
		}
	}

	s.log.InfoContext(ctx, "report built",
		slog.String("user_id", userID.String()),
		slog.Int("events", report.TotalEvents))

	return report, nil
}

func emptyReport() *Report {
	return &Report{
		ByDay:      map[string]int{},
		ByMonth:    map[string]int{},
		ByCategory: map[string]int{},
		ByArea:     map[string]int{},
	}
}

package events

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
	"github.com/okoshkin/lifelog-backend/pkg/ctxutil"
)

// List returns one page of the user's events, newest first.
//
// The area filter is resolved in two steps: first the area's category IDs are
// fetched, then events are matched against that set. An area with no
// categories short-circuits to an empty page without touching the events
// table. SearchText is applied to the retrieved page, not pushed into SQL;
// see ListResult for the consequences on totals.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = s.cfg.DefaultPageSize
	}
	if pageSize > s.cfg.MaxPageSize {
		pageSize = s.cfg.MaxPageSize
	}

	filter := domain.EventFilter{
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		Limit:    pageSize,
		Offset:   input.Page * pageSize,
	}

	switch {
	case input.CategoryID != nil:
		filter.CategoryIDs = []uuid.UUID{*input.CategoryID}
	case input.AreaID != nil:
		ids, err := s.categories.ListIDsByArea(ctx, userID, *input.AreaID)
		if err != nil {
			return nil, fmt.Errorf("events.List resolve area: %w", err)
		}
		if len(ids) == 0 {
			return &ListResult{
				Events:   []domain.Event{},
				Page:     input.Page,
				PageSize: pageSize,
			}, nil
		}
		filter.CategoryIDs = ids
	}

	found, err := s.events.Find(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("events.List: %w", err)
	}

	total, err := s.events.Count(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("events.List count: %w", err)
	}

	if input.SearchText != "" {
		found = filterByComment(found, input.SearchText)
	}

	return &ListResult{
		Events:     found,
		TotalCount: total,
		Page:       input.Page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

// Get returns a single event by ID.
func (s *Service) Get(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	e, err := s.events.GetByID(ctx, userID, eventID)
	if err != nil {
		return nil, fmt.Errorf("events.Get: %w", err)
	}
	return e, nil
}

// filterByComment keeps events whose comment contains the text, case-insensitive.
func filterByComment(events []domain.Event, text string) []domain.Event {
	needle := strings.ToLower(text)
	out := []domain.Event{}
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Comment), needle) {
			out = append(out, e)
		}
	}
	return out
}

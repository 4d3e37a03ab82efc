package analytics

import (
	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
)

// Key layouts for the time bucket maps.
const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// CountByDay buckets events per calendar day of occurred_at.
func CountByDay(events []domain.Event) map[string]int {
	out := map[string]int{}
	for _, e := range events {
		out[e.OccurredAt.Format(dayLayout)]++
	}
	return out
}

// CountByMonth buckets events per calendar month of occurred_at.
func CountByMonth(events []domain.Event) map[string]int {
	out := map[string]int{}
	for _, e := range events {
		out[e.OccurredAt.Format(monthLayout)]++
	}
	return out
}

// CountByCategory buckets events by category name. Events whose category is
// missing from the mapping are counted under their raw category ID so the
// totals still add up.
func CountByCategory(events []domain.Event, categoryNames map[uuid.UUID]string) map[string]int {
	out := map[string]int{}
	for _, e := range events {
		name, ok := categoryNames[e.CategoryID]
		if !ok {
			name = e.CategoryID.String()
		}
		out[name]++
	}
	return out
}

// CountByArea buckets events by area name, resolving the area through the
// category mapping. Events whose category has no known area are counted under
// their raw category ID.
func CountByArea(events []domain.Event, categoryAreas map[uuid.UUID]uuid.UUID, areaNames map[uuid.UUID]string) map[string]int {
	out := map[string]int{}
	for _, e := range events {
		areaID, ok := categoryAreas[e.CategoryID]
		if !ok {
			out[e.CategoryID.String()]++
			continue
		}
		name, ok := areaNames[areaID]
		if !ok {
			name = areaID.String()
		}
		out[name]++
	}
	return out
}

// WeekdayHistogram counts events per weekday of occurred_at.
// The result always has 7 buckets, Sunday first, matching time.Weekday.
func WeekdayHistogram(events []domain.Event) [7]int {
	var out [7]int
	for _, e := range events {
		out[int(e.OccurredAt.Weekday())]++
	}
	return out
}

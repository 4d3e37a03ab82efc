package events

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
	"github.com/okoshkin/lifelog-backend/pkg/ctxutil"
)

// ImportRow is one candidate event in an import batch. LineNumber refers to
// the source line in the uploaded file (header is line 1) or the item index
// for manual multi-row input.
type ImportRow struct {
	LineNumber      int
	CategoryID      uuid.UUID
	OccurredAt      time.Time
	Comment         string
	DurationMinutes *int
}

var csvColumns = []string{"category_id", "occurred_at", "comment", "duration_minutes"}

// occurredAtLayouts are accepted timestamp formats, tried in order.
var occurredAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseCSV reads an import file into rows. The first line must be a header
// containing at least the columns category_id, occurred_at, comment and
// duration_minutes, in any order. Malformed rows become ImportErrors; only an
// unreadable file or a bad header is a hard error.
func ParseCSV(r io.Reader) ([]ImportRow, []ImportError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range csvColumns {
		if _, ok := colIndex[required]; !ok {
			return nil, nil, domain.NewValidationError("file", "missing column " + required)
		}
	}

	var (
		rows      []ImportRow
		rowErrors []ImportError
	)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			rowErrors = append(rowErrors, ImportError{LineNumber: line, Reason: "malformed csv row"})
			continue
		}

		row, reason := parseRecord(record, colIndex)
		if reason != "" {
			rowErrors = append(rowErrors, ImportError{LineNumber: line, Reason: reason})
			continue
		}
		row.LineNumber = line
		rows = append(rows, row)
	}

	return rows, rowErrors, nil
}

func parseRecord(record []string, colIndex map[string]int) (ImportRow, string) {
	field := func(name string) string {
		i := colIndex[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	categoryID, err := uuid.Parse(field("category_id"))
	if err != nil {
		return ImportRow{}, "invalid category_id"
	}

	occurredAt, ok := parseOccurredAt(field("occurred_at"))
	if !ok {
		return ImportRow{}, "invalid occurred_at"
	}

	row := ImportRow{
		CategoryID: categoryID,
		OccurredAt: occurredAt,
		Comment:    field("comment"),
	}

	if raw := field("duration_minutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 0 {
			return ImportRow{}, "invalid duration_minutes"
		}
		row.DurationMinutes = &minutes
	}

	return row, ""
}

func parseOccurredAt(raw string) (time.Time, bool) {
	for _, layout := range occurredAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Import inserts the rows one by one. A failing row is recorded in the result
// and does not abort the batch; rows already inserted stay inserted.
func (s *Service) Import(ctx context.Context, rows []ImportRow) (*ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if len(rows) > s.cfg.ImportMaxRows {
		return nil, domain.NewValidationError("rows", fmt.Sprintf("too many rows, limit is %d", s.cfg.ImportMaxRows))
	}

	result := &ImportResult{}

	// Category ownership is checked per row so one bad reference does not
	// sink the rest; lookups are cached for the duration of the batch.
	known := map[uuid.UUID]bool{}
	for _, row := range rows {
		if reason := s.importRow(ctx, userID, row, known); reason != "" {
			result.Errors = append(result.Errors, ImportError{LineNumber: row.LineNumber, Reason: reason})
			continue
		}
		result.Imported++
	}

	s.log.InfoContext(ctx, "import finished",
		slog.String("user_id", userID.String()),
		slog.Int("imported", result.Imported),
		slog.Int("failed", len(result.Errors)))

	return result, nil
}

func (s *Service) importRow(ctx context.Context, userID uuid.UUID, row ImportRow, known map[uuid.UUID]bool) string {
	valid, seen := known[row.CategoryID]
	if !seen {
		_, err := s.categories.GetByID(ctx, userID, row.CategoryID)
		valid = err == nil
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return "category lookup failed"
		}
		known[row.CategoryID] = valid
	}
	if !valid {
		return "unknown category"
	}

	if row.DurationMinutes != nil && *row.DurationMinutes < 0 {
		return "invalid duration_minutes"
	}

	now := time.Now()
	_, err := s.events.Create(ctx, &domain.Event{
		ID:              uuid.New(),
		UserID:          userID,
		CategoryID:      row.CategoryID,
		OccurredAt:      row.OccurredAt,
		Comment:         row.Comment,
		DurationMinutes: row.DurationMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return "insert failed"
	}
	return ""
}

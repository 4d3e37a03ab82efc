package events

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/okoshkin/lifelog-backend/internal/adapter/postgres/event"
	"github.com/okoshkin/lifelog-backend/internal/domain"
	"github.com/okoshkin/lifelog-backend/pkg/ctxutil"
)

var exportHeader = []string{"comment", "occurred_at", "category", "area", "duration_minutes"}

// Export writes the user's events in the date range to w, newest first,
// serialized per input.Format. Returns the number of exported rows.
func (s *Service) Export(ctx context.Context, w io.Writer, input ExportInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	rows, err := s.events.ListExportRows(ctx, userID, input.From, input.To, s.cfg.ExportMaxRows)
	if err != nil {
		return 0, fmt.Errorf("events.Export: %w", err)
	}

	switch input.Format {
	case FormatXLSX:
		err = writeXLSX(w, rows)
	default:
		err = writeCSV(w, rows)
	}
	if err != nil {
		return 0, fmt.Errorf("events.Export serialize: %w", err)
	}

	return len(rows), nil
}

func writeCSV(w io.Writer, rows []event.ExportRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(exportRecord(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, rows []event.ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Events"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		record := exportRecord(row)
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func exportRecord(row event.ExportRow) []string {
	duration := ""
	if row.DurationMinutes != nil {
		duration = strconv.Itoa(*row.DurationMinutes)
	}
	return []string{
		row.Comment,
		row.OccurredAt.Format("2006-01-02 15:04:05"),
		row.CategoryName,
		row.AreaName,
		duration,
	}
}

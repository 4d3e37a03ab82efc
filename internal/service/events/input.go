package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
)

const maxCommentLength = 10000

// ListInput holds filter and paging parameters for the list operation.
// Page is 0-indexed. When both AreaID and CategoryID are set, the narrower
// category filter is used and the area is ignored.
type ListInput struct {
	AreaID     *uuid.UUID
	CategoryID *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
	SearchText string
	Page       int
	PageSize   int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must not be negative"})
	}
	if i.PageSize < 0 {
		errs = append(errs, domain.FieldError{Field: "page_size", Message: "must not be negative"})
	}
	if i.DateFrom != nil && i.DateTo != nil && i.DateTo.Before(*i.DateFrom) {
		errs = append(errs, domain.FieldError{Field: "date_to", Message: "must not be before date_from"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddInput holds parameters for event creation.
type AddInput struct {
	CategoryID      uuid.UUID
	OccurredAt      time.Time
	Comment         string
	DurationMinutes *int
	Extra           map[string]any
}

// Validate validates the add input.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if i.OccurredAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "occurred_at", Message: "required"})
	}
	if len(i.Comment) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "too long"})
	}
	if i.DurationMinutes != nil && *i.DurationMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "duration_minutes", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds parameters for the full-replace update operation.
// A nil DurationMinutes clears the stored value; a nil Extra clears the payload.
type UpdateInput struct {
	EventID         uuid.UUID
	CategoryID      uuid.UUID
	OccurredAt      time.Time
	Comment         string
	DurationMinutes *int
	Extra           map[string]any
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if i.OccurredAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "occurred_at", Message: "required"})
	}
	if len(i.Comment) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "too long"})
	}
	if i.DurationMinutes != nil && *i.DurationMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "duration_minutes", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ExportFormat selects the export serialization.
type ExportFormat string

// Supported export formats.
const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

// ExportInput holds parameters for the export operation.
type ExportInput struct {
	From   time.Time
	To     time.Time
	Format ExportFormat
}

// Validate validates the export input.
func (i ExportInput) Validate() error {
	var errs []domain.FieldError

	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if !i.From.IsZero() && !i.To.IsZero() && i.To.Before(i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	switch i.Format {
	case FormatCSV, FormatXLSX:
	default:
		errs = append(errs, domain.FieldError{Field: "format", Message: "must be csv or xlsx"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

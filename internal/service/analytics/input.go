package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
)

// Input holds optional filters for the analytics report.
// When both AreaID and CategoryID are set, the narrower category filter is
// used and the area is ignored.
type Input struct {
	From       *time.Time
	To         *time.Time
	AreaID     *uuid.UUID
	CategoryID *uuid.UUID
}

// Validate validates the analytics input.
func (i Input) Validate() error {
	var errs []domain.FieldError

	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

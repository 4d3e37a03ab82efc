package events

import "github.com/okoshkin/lifelog-backend/internal/domain"

// ListResult is returned by List.
//
// TotalCount and TotalPages are computed from the SQL predicates only: when
// SearchText is set, the text filter is applied after retrieval and the
// totals deliberately keep counting unfiltered rows. A page may therefore
// hold fewer events than PageSize while TotalCount stays unchanged.
type ListResult struct {
	Events     []domain.Event
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int
}

// ImportError describes one rejected import row. The batch continues past it.
type ImportError struct {
	LineNumber int
	Reason     string
}

// ImportResult is returned by Import.
type ImportResult struct {
	Imported int
	Errors   []ImportError
}

package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/okoshkin/lifelog-backend/internal/domain"
	"github.com/okoshkin/lifelog-backend/internal/service/analytics"
)

// analyticsService defines the minimal interface needed by AnalyticsHandler.
type analyticsService interface {
	BuildReport(ctx context.Context, input analytics.Input) (*analytics.Report, error)
}

// AnalyticsHandler serves the aggregate report endpoint.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

type analyticsResponse struct {
	TotalEvents          int            `json:"total_events"`
	TotalDurationMinutes int            `json:"total_duration_minutes"`
	ByDay                map[string]int `json:"by_day"`
	ByMonth              map[string]int `json:"by_month"`
	ByCategory           map[string]int `json:"by_category"`
	ByArea               map[string]int `json:"by_area"`
	Weekday              [7]int         `json:"weekday"`
}

// Report handles GET /api/analytics?from=&to=&area_id=&category_id=.
func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		input analytics.Input
		bad   string
	)
	input.From, bad = optionalTime(q.Get("from"), "from", bad)
	input.To, bad = optionalTime(q.Get("to"), "to", bad)
	input.AreaID, bad = optionalUUID(q.Get("area_id"), "area_id", bad)
	input.CategoryID, bad = optionalUUID(q.Get("category_id"), "category_id", bad)
	if bad != "" {
		writeError(w, http.StatusBadRequest, "invalid "+bad)
		return
	}

	report, err := h.svc.BuildReport(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, analyticsResponse{
		TotalEvents:          report.TotalEvents,
		TotalDurationMinutes: report.TotalDurationMinutes,
		ByDay:                report.ByDay,
		ByMonth:              report.ByMonth,
		ByCategory:           report.ByCategory,
		ByArea:               report.ByArea,
		Weekday:              report.Weekday,
	})
}

func (h *AnalyticsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

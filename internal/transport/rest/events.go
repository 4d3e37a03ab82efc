package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
	"github.com/okoshkin/lifelog-backend/internal/service/events"
)

const importMaxUploadBytes = 16 << 20

// eventsService defines the minimal interface needed by EventsHandler.
type eventsService interface {
	List(ctx context.Context, input events.ListInput) (*events.ListResult, error)
	Get(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	Add(ctx context.Context, input events.AddInput) (*domain.Event, error)
	Update(ctx context.Context, input events.UpdateInput) (*domain.Event, error)
	Delete(ctx context.Context, eventID uuid.UUID) error
	Import(ctx context.Context, rows []events.ImportRow) (*events.ImportResult, error)
	Export(ctx context.Context, w io.Writer, input events.ExportInput) (int, error)
}

// EventsHandler serves event REST endpoints.
type EventsHandler struct {
	svc eventsService
	log *slog.Logger
}

// NewEventsHandler creates an EventsHandler.
func NewEventsHandler(svc eventsService, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{svc: svc, log: logger.With("handler", "events")}
}

type eventRequest struct {
	CategoryID      string         `json:"category_id"`
	OccurredAt      time.Time      `json:"occurred_at"`
	Comment         string         `json:"comment"`
	DurationMinutes *int           `json:"duration_minutes"`
	Extra           map[string]any `json:"extra"`
}

type eventResponse struct {
	ID              string         `json:"id"`
	CategoryID      string         `json:"category_id"`
	OccurredAt      time.Time      `json:"occurred_at"`
	Comment         string         `json:"comment"`
	DurationMinutes *int           `json:"duration_minutes"`
	Extra           map[string]any `json:"extra,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type eventListResponse struct {
	Events     []eventResponse `json:"events"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

type importRowRequest struct {
	CategoryID      string    `json:"category_id"`
	OccurredAt      time.Time `json:"occurred_at"`
	Comment         string    `json:"comment"`
	DurationMinutes *int      `json:"duration_minutes"`
}

type importRequest struct {
	Rows []importRowRequest `json:"rows"`
}

type importErrorResponse struct {
	LineNumber int    `json:"line_number"`
	Reason     string `json:"reason"`
}

type importResponse struct {
	Imported int                   `json:"imported"`
	Errors   []importErrorResponse `json:"errors"`
}

// List handles GET /api/events.
// Query: area_id, category_id, from, to, search_text, page, page_size.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := events.ListInput{
		SearchText: q.Get("search_text"),
	}

	var bad string
	input.AreaID, bad = optionalUUID(q.Get("area_id"), "area_id", bad)
	input.CategoryID, bad = optionalUUID(q.Get("category_id"), "category_id", bad)
	input.DateFrom, bad = optionalTime(q.Get("from"), "from", bad)
	input.DateTo, bad = optionalTime(q.Get("to"), "to", bad)
	input.Page, bad = optionalInt(q.Get("page"), "page", bad)
	input.PageSize, bad = optionalInt(q.Get("page_size"), "page_size", bad)
	if bad != "" {
		writeError(w, http.StatusBadRequest, "invalid "+bad)
		return
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := eventListResponse{
		Events:     make([]eventResponse, 0, len(result.Events)),
		TotalCount: result.TotalCount,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}
	for _, e := range result.Events {
		out.Events = append(out.Events, toEventResponse(&e))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/events/{id}.
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	e, err := h.svc.Get(r.Context(), eventID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(e))
}

// Create handles POST /api/events.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category_id")
		return
	}

	e, err := h.svc.Add(r.Context(), events.AddInput{
		CategoryID:      categoryID,
		OccurredAt:      req.OccurredAt,
		Comment:         req.Comment,
		DurationMinutes: req.DurationMinutes,
		Extra:           req.Extra,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(e))
}

// Update handles PUT /api/events/{id}. The body replaces the event in full;
// an absent duration_minutes clears the stored value.
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category_id")
		return
	}

	e, err := h.svc.Update(r.Context(), events.UpdateInput{
		EventID:         eventID,
		CategoryID:      categoryID,
		OccurredAt:      req.OccurredAt,
		Comment:         req.Comment,
		DurationMinutes: req.DurationMinutes,
		Extra:           req.Extra,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(e))
}

// Delete handles DELETE /api/events/{id}.
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), eventID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Import handles POST /api/events/import. Accepts either a multipart upload
// with a CSV file under the "file" field or a JSON body with a rows array.
// Unparseable rows and failed inserts land in the same per-line error list;
// neither aborts the rest of the batch.
func (h *EventsHandler) Import(w http.ResponseWriter, r *http.Request) {
	var (
		rows        []events.ImportRow
		parseErrors []events.ImportError
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(importMaxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart body")
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file field")
			return
		}
		defer file.Close()

		rows, parseErrors, err = events.ParseCSV(file)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
	} else {
		var req importRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		for i, row := range req.Rows {
			// An unparseable category_id becomes uuid.Nil and is reported
			// per row as an unknown category, same as the CSV path.
			categoryID, _ := uuid.Parse(row.CategoryID)
			rows = append(rows, events.ImportRow{
				LineNumber:      i + 1,
				CategoryID:      categoryID,
				OccurredAt:      row.OccurredAt,
				Comment:         row.Comment,
				DurationMinutes: row.DurationMinutes,
			})
		}
	}

	result, err := h.svc.Import(r.Context(), rows)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := importResponse{
		Imported: result.Imported,
		Errors:   make([]importErrorResponse, 0, len(parseErrors)+len(result.Errors)),
	}
	for _, ie := range parseErrors {
		out.Errors = append(out.Errors, importErrorResponse{LineNumber: ie.LineNumber, Reason: ie.Reason})
	}
	for _, ie := range result.Errors {
		out.Errors = append(out.Errors, importErrorResponse{LineNumber: ie.LineNumber, Reason: ie.Reason})
	}
	writeJSON(w, http.StatusOK, out)
}

// Export handles GET /api/events/export?from=&to=&format=csv|xlsx.
func (h *EventsHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var bad string
	fromPtr, bad := optionalTime(q.Get("from"), "from", bad)
	toPtr, bad := optionalTime(q.Get("to"), "to", bad)
	if bad != "" {
		writeError(w, http.StatusBadRequest, "invalid "+bad)
		return
	}

	input := events.ExportInput{Format: events.ExportFormat(q.Get("format"))}
	if fromPtr != nil {
		input.From = *fromPtr
	}
	if toPtr != nil {
		input.To = *toPtr
	}

	// Validate before writing headers; once streaming starts the status is
	// committed.
	if err := input.Validate(); err != nil {
		h.handleError(w, r, err)
		return
	}

	switch input.Format {
	case events.FormatCSV:
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="events.csv"`)
	case events.FormatXLSX:
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="events.xlsx"`)
	}

	if _, err := h.svc.Export(r.Context(), w, input); err != nil {
		h.log.ErrorContext(r.Context(), "export failed", slog.String("error", err.Error()))
		return
	}
}

func (h *EventsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		ID:              e.ID.String(),
		CategoryID:      e.CategoryID.String(),
		OccurredAt:      e.OccurredAt,
		Comment:         e.Comment,
		DurationMinutes: e.DurationMinutes,
		Extra:           e.Extra,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// optionalUUID parses a query value when present. The bad name of the first
// failing parameter is threaded through so callers report one error.
func optionalUUID(raw, name, bad string) (*uuid.UUID, string) {
	if raw == "" || bad != "" {
		return nil, bad
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, name
	}
	return &id, ""
}

func optionalTime(raw, name, bad string) (*time.Time, string) {
	if raw == "" || bad != "" {
		return nil, bad
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, ""
		}
	}
	return nil, name
}

func optionalInt(raw, name, bad string) (int, string) {
	if raw == "" || bad != "" {
		return 0, bad
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, name
	}
	return n, ""
}

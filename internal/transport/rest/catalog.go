package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/domain"
	"github.com/okoshkin/lifelog-backend/internal/service/catalog"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	CreateArea(ctx context.Context, input catalog.CreateAreaInput) (*domain.Area, error)
	ListAreas(ctx context.Context) ([]domain.Area, error)
	RenameArea(ctx context.Context, input catalog.RenameAreaInput) (*domain.Area, error)
	DeleteArea(ctx context.Context, areaID uuid.UUID) error
	CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (*domain.Category, error)
	ListCategories(ctx context.Context, areaID *uuid.UUID) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, input catalog.UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
}

// CatalogHandler serves area and category REST endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type areaRequest struct {
	Name string `json:"name"`
}

type areaResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type categoryRequest struct {
	AreaID string `json:"area_id"`
	Name   string `json:"name"`
}

type categoryResponse struct {
	ID        string    `json:"id"`
	AreaID    string    `json:"area_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListAreas handles GET /api/areas.
func (h *CatalogHandler) ListAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.svc.ListAreas(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]areaResponse, 0, len(areas))
	for _, a := range areas {
		out = append(out, toAreaResponse(&a))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateArea handles POST /api/areas.
func (h *CatalogHandler) CreateArea(w http.ResponseWriter, r *http.Request) {
	var req areaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	area, err := h.svc.CreateArea(r.Context(), catalog.CreateAreaInput{Name: req.Name})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAreaResponse(area))
}

// RenameArea handles PATCH /api/areas/{id}.
func (h *CatalogHandler) RenameArea(w http.ResponseWriter, r *http.Request) {
	areaID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req areaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	area, err := h.svc.RenameArea(r.Context(), catalog.RenameAreaInput{
		AreaID: areaID,
		Name:   req.Name,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAreaResponse(area))
}

// DeleteArea handles DELETE /api/areas/{id}.
// An area still holding categories is not deleted and yields 409.
func (h *CatalogHandler) DeleteArea(w http.ResponseWriter, r *http.Request) {
	areaID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteArea(r.Context(), areaID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCategories handles GET /api/categories?area_id=.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	var areaID *uuid.UUID
	if raw := r.URL.Query().Get("area_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid area_id")
			return
		}
		areaID = &id
	}

	categories, err := h.svc.ListCategories(r.Context(), areaID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(&c))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateCategory handles POST /api/categories.
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	areaID, err := uuid.Parse(req.AreaID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid area_id")
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), catalog.CreateCategoryInput{
		AreaID: areaID,
		Name:   req.Name,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(category))
}

// UpdateCategory handles PATCH /api/categories/{id}.
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	areaID, err := uuid.Parse(req.AreaID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid area_id")
		return
	}

	category, err := h.svc.UpdateCategory(r.Context(), catalog.UpdateCategoryInput{
		CategoryID: categoryID,
		AreaID:     areaID,
		Name:       req.Name,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

// DeleteCategory handles DELETE /api/categories/{id}.
// A category still holding events is not deleted and yields 409.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), categoryID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathUUID parses the chi URL parameter as a UUID, writing 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+param)
		return uuid.Nil, false
	}
	return id, true
}

func toAreaResponse(a *domain.Area) areaResponse {
	return areaResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID.String(),
		AreaID:    c.AreaID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

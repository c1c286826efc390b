package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"review-hub/internal/data/repository"
	"review-hub/internal/dto/request"
	"review-hub/internal/usecase"
	"review-hub/pkg/utils"

	"go.uber.org/zap"
)

type TitleHandler struct {
	service usecase.TitleService
	log     *zap.Logger
}

func NewTitleHandler(service usecase.TitleService, log *zap.Logger) *TitleHandler {
	return &TitleHandler{
		service: service,
		log:     log.With(zap.String("handler", "title")),
	}
}

// List handles GET /api/v1/titles (public)
// Query params: category, genre, name, year, page, per_page.
func (h *TitleHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repository.TitleFilter{
		CategorySlug: query.Get("category"),
		GenreSlug:    query.Get("genre"),
		Name:         query.Get("name"),
	}
	if yearStr := query.Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid year filter", nil)
			return
		}
		filter.Year = year
	}

	titles, err := h.service.List(r.Context(), filter, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list titles")
		return
	}

	utils.ResponseSuccess(w, "success", titles)
}

// Get handles GET /api/v1/titles/{titleID} (public)
func (h *TitleHandler) Get(w http.ResponseWriter, r *http.Request) {
	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}

	title, err := h.service.Get(r.Context(), titleID)
	if err != nil {
		handleServiceError(w, h.log, err, "get title")
		return
	}

	utils.ResponseSuccess(w, "success", title)
}

// Create handles POST /api/v1/titles (admin)
func (h *TitleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.TitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	title, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create title")
		return
	}

	utils.ResponseCreated(w, "success", title)
}

// Update handles PATCH /api/v1/titles/{titleID} (admin)
func (h *TitleHandler) Update(w http.ResponseWriter, r *http.Request) {
	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}

	var req request.TitleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	title, err := h.service.Update(r.Context(), titleID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update title")
		return
	}

	utils.ResponseSuccess(w, "success", title)
}

// Delete handles DELETE /api/v1/titles/{titleID} (admin)
func (h *TitleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}

	if err := h.service.Delete(r.Context(), titleID); err != nil {
		handleServiceError(w, h.log, err, "delete title")
		return
	}

	utils.ResponseNoContent(w)
}

package adaptor

import (
	"encoding/json"
	"net/http"

	"review-hub/internal/dto/request"
	"review-hub/internal/usecase"
	"review-hub/pkg/middleware"
	"review-hub/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// List handles GET /api/v1/titles/{titleID}/reviews (public)
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}

	reviews, err := h.service.ListByTitle(r.Context(), titleID, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// Get handles GET /api/v1/titles/{titleID}/reviews/{reviewID} (public)
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}
	reviewID, ok := pathID(r, "reviewID")
	if !ok {
		utils.ResponseNotFound(w, "Review not found")
		return
	}

	review, err := h.service.Get(r.Context(), titleID, reviewID)
	if err != nil {
		handleServiceError(w, h.log, err, "get review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// Create handles POST /api/v1/titles/{titleID}/reviews (authenticated)
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.Create(r.Context(), requester, titleID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// Update handles PATCH /api/v1/titles/{titleID}/reviews/{reviewID}
// (author, moderator or admin)
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}
	reviewID, ok := pathID(r, "reviewID")
	if !ok {
		utils.ResponseNotFound(w, "Review not found")
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.Update(r.Context(), requester, titleID, reviewID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// Delete handles DELETE /api/v1/titles/{titleID}/reviews/{reviewID}
// (author, moderator or admin)
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}
	reviewID, ok := pathID(r, "reviewID")
	if !ok {
		utils.ResponseNotFound(w, "Review not found")
		return
	}

	if err := h.service.Delete(r.Context(), requester, titleID, reviewID); err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseNoContent(w)
}

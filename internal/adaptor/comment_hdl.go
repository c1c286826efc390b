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

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// commentPath pulls the three-level parent chain from the URL.
func commentPath(w http.ResponseWriter, r *http.Request, needComment bool) (titleID, reviewID, commentID int64, ok bool) {
	titleID, ok = pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}
	reviewID, ok = pathID(r, "reviewID")
	if !ok {
		utils.ResponseNotFound(w, "Review not found")
		return
	}
	if needComment {
		commentID, ok = pathID(r, "commentID")
		if !ok {
			utils.ResponseNotFound(w, "Comment not found")
			return
		}
	}
	return titleID, reviewID, commentID, true
}

// List handles GET /api/v1/titles/{titleID}/reviews/{reviewID}/comments (public)
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, _, ok := commentPath(w, r, false)
	if !ok {
		return
	}

	comments, err := h.service.ListByReview(r.Context(), titleID, reviewID, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list comments")
		return
	}

	utils.ResponseSuccess(w, "success", comments)
}

// Get handles GET .../comments/{commentID} (public)
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, commentID, ok := commentPath(w, r, true)
	if !ok {
		return
	}

	comment, err := h.service.Get(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		handleServiceError(w, h.log, err, "get comment")
		return
	}

	utils.ResponseSuccess(w, "success", comment)
}

// Create handles POST .../comments (authenticated)
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID, reviewID, _, ok := commentPath(w, r, false)
	if !ok {
		return
	}

	var req request.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	comment, err := h.service.Create(r.Context(), requester, titleID, reviewID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create comment")
		return
	}

	utils.ResponseCreated(w, "success", comment)
}

// Update handles PATCH .../comments/{commentID} (author, moderator or admin)
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID, reviewID, commentID, ok := commentPath(w, r, true)
	if !ok {
		return
	}

	var req request.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	comment, err := h.service.Update(r.Context(), requester, titleID, reviewID, commentID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update comment")
		return
	}

	utils.ResponseSuccess(w, "success", comment)
}

// Delete handles DELETE .../comments/{commentID} (author, moderator or admin)
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID, reviewID, commentID, ok := commentPath(w, r, true)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), requester, titleID, reviewID, commentID); err != nil {
		handleServiceError(w, h.log, err, "delete comment")
		return
	}

	utils.ResponseNoContent(w)
}

package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/IbuprofenLover/brewing-stand/application/commands"
	"github.com/IbuprofenLover/brewing-stand/application/queries"
	"github.com/IbuprofenLover/brewing-stand/application/services"
	"github.com/IbuprofenLover/brewing-stand/domain/core/entities"
	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
	"github.com/IbuprofenLover/brewing-stand/pkg/utils"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	base
	service *services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *services.ReviewService, errorHandler *errors.ErrorHandler, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		base:    base{errHandler: errorHandler, logger: logger},
		service: service,
	}
}

// CreateReviewRequest represents the request body for creating a review
type CreateReviewRequest struct {
	CoffeeName string `json:"coffeeName" validate:"notblank"`
	Rating     *int   `json:"rating" validate:"required"`
	Comment    string `json:"comment" validate:"notblank"`
}

// UpdateReviewRequest represents the request body for updating a review.
// Both fields are mandatory; they are checked once the review is found.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ListReviews handles GET /reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	result := h.service.ListReviews(queries.ListReviewsQuery{
		Filter:      entities.ReviewFilter{CoffeeName: optionalQuery(r, "coffeeName")},
		IfNoneMatch: r.Header.Get("If-None-Match"),
	})
	respondConditional(h.base, w, result)
}

// GetReview handles GET /reviews/{id}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetReview(queries.GetReviewQuery{
		ID:          pathParam(r, "id"),
		IfNoneMatch: r.Header.Get("If-None-Match"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondConditional(h.base, w, result)
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, r, err)
		return
	}

	review, err := h.service.CreateReview(commands.CreateReviewCommand{
		CoffeeName: req.CoffeeName,
		Rating:     *req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/reviews/"+review.ID)
	h.respondJSON(w, http.StatusCreated, review)
}

// UpdateReview handles PUT /reviews/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	var req UpdateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	review, err := h.service.UpdateReview(commands.UpdateReviewCommand{
		ID:      pathParam(r, "id"),
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, review)
}

// DeleteReview handles DELETE /reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteReview(commands.DeleteReviewCommand{ID: pathParam(r, "id")}); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/bynara/MeliProductDetail/internal/model"
	"github.com/bynara/MeliProductDetail/internal/service"

	"github.com/rs/zerolog"
)

// ReviewHandler handles review-related HTTP requests.
type ReviewHandler struct {
	service service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("handler", "review").Logger(),
	}
}

// List handles GET /reviews/.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

// GetByID handles GET /reviews/{id}.
func (h *ReviewHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeBadRequest, "invalid review ID", h.logger)
		return
	}

	review, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, review)
}

// ListByProduct handles GET /reviews/product/{id}. A product without reviews
// is reported as not found.
func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeBadRequest, "invalid product ID", h.logger)
		return
	}

	reviews, err := h.service.ListByProduct(r.Context(), id)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	if len(reviews) == 0 {
		writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound,
			fmt.Sprintf("no reviews found for product %d", id), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

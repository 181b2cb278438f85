package handler

import (
	"net/http"

	"github.com/bynara/MeliProductDetail/internal/model"
	"github.com/bynara/MeliProductDetail/internal/service"

	"github.com/rs/zerolog"
)

// CategoryHandler handles category requests.
type CategoryHandler struct {
	service service.CategoryService
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "category").Logger(),
	}
}

// List handles GET /categories/.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetByID handles GET /categories/{id}.
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeBadRequest, "invalid category ID", h.logger)
		return
	}

	category, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// PaymentMethodHandler handles payment method requests.
type PaymentMethodHandler struct {
	service service.PaymentMethodService
	logger  zerolog.Logger
}

// NewPaymentMethodHandler creates a new payment method handler.
func NewPaymentMethodHandler(service service.PaymentMethodService, logger zerolog.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		service: service,
		logger:  logger.With().Str("handler", "payment-method").Logger(),
	}
}

// List handles GET /payment-methods/.
func (h *PaymentMethodHandler) List(w http.ResponseWriter, r *http.Request) {
	methods, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, methods)
}

// GetByID handles GET /payment-methods/{id}.
func (h *PaymentMethodHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeBadRequest, "invalid payment method ID", h.logger)
		return
	}

	method, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, method)
}

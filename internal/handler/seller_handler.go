package handler

import (
	"net/http"

	"github.com/bynara/MeliProductDetail/internal/model"
	"github.com/bynara/MeliProductDetail/internal/service"

	"github.com/rs/zerolog"
)

// SellerHandler handles seller-related HTTP requests.
type SellerHandler struct {
	service service.SellerService
	logger  zerolog.Logger
}

// NewSellerHandler creates a new seller handler.
func NewSellerHandler(service service.SellerService, logger zerolog.Logger) *SellerHandler {
	return &SellerHandler{
		service: service,
		logger:  logger.With().Str("handler", "seller").Logger(),
	}
}

// List handles GET /sellers/.
func (h *SellerHandler) List(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sellers)
}

// GetByID handles GET /sellers/{id}.
func (h *SellerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeBadRequest, "invalid seller ID", h.logger)
		return
	}

	seller, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, seller)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/bynara/MeliProductDetail/internal/model"
	"github.com/bynara/MeliProductDetail/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service      service.ProductService
	similarLimit int
	logger       zerolog.Logger
}

// NewProductHandler creates a new product handler. similarLimit is used when
// a similar products request carries no limit.
func NewProductHandler(service service.ProductService, similarLimit int, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:      service,
		similarLimit: similarLimit,
		logger:       logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /products/.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /products/{id}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeBadRequest, "invalid product ID", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Similar handles GET /products/{id}/similar/?limit=N.
func (h *ProductHandler) Similar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeBadRequest, "invalid product ID", h.logger)
		return
	}

	limit := h.similarLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeBadRequest, "invalid limit parameter", h.logger)
			return
		}
	}

	products, err := h.service.Similar(r.Context(), id, limit)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bynara/MeliProductDetail/internal/middleware"
	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent
		return
	}
}

// writeError logs the failure and writes the error response.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.RequestIDFromContext(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("error", message).
		Int("status", status).
		Str("request_id", correlationID).
		Msg("handler error")

	middleware.WriteError(w, r, status, code, message)
}

// respondError maps a service error onto its HTTP status.
func respondError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var enrichErr *model.EnrichmentError
	switch {
	case errors.As(err, &enrichErr):
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, enrichErr.Error(), logger)
	case errors.Is(err, model.ErrNotFound):
		writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, err.Error(), logger)
	default:
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("unexpected error")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
	}
}

// pathID parses the integer URL parameter name.
func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

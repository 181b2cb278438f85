package handler

import (
	"net/http"

	"github.com/bynara/MeliProductDetail/internal/model"
)

// Info handles GET / with the API description.
func Info(info model.APIInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, info)
	}
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

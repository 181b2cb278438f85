package handler

import (
	"errors"
	"net/http"

	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/rs/zerolog"
)

// CredentialChecker verifies a username and password.
type CredentialChecker interface {
	Authenticate(username, password string) error
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// AuthHandler issues bearer tokens.
type AuthHandler struct {
	credentials CredentialChecker
	tokens      TokenIssuer
	logger      zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(credentials CredentialChecker, tokens TokenIssuer, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		tokens:      tokens,
		logger:      logger.With().Str("handler", "auth").Logger(),
	}
}

// Token handles POST /token with form fields username and password.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeBadRequest, "invalid form body", h.logger)
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if username == "" || password == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeBadRequest, "username and password are required", h.logger)
		return
	}

	if err := h.credentials.Authenticate(username, password); err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeError(w, r, http.StatusBadRequest, domainErr.Code, domainErr.Message, h.logger)
			return
		}
		respondError(w, r, err, h.logger)
		return
	}

	token, err := h.tokens.Issue(username)
	if err != nil {
		respondError(w, r, err, h.logger)
		return
	}

	h.logger.Info().Str("username", username).Msg("issued access token")
	writeJSON(w, http.StatusOK, model.TokenResponse{
		AccessToken: token,
		TokenType:   model.TokenTypeBearer,
	})
}

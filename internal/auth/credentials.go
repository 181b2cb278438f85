package auth

import (
	"crypto/subtle"

	"github.com/bynara/MeliProductDetail/internal/config"
	"github.com/bynara/MeliProductDetail/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator checks a username and password against the single
// configured account.
type Authenticator struct {
	username     string
	passwordHash []byte
	logger       zerolog.Logger
}

// NewAuthenticator creates an authenticator for the configured account.
func NewAuthenticator(cfg config.AuthConfig, logger zerolog.Logger) *Authenticator {
	return &Authenticator{
		username:     cfg.Username,
		passwordHash: []byte(cfg.PasswordHash),
		logger:       logger.With().Str("component", "authenticator").Logger(),
	}
}

// Authenticate returns model.ErrInvalidCredentials unless username and
// password match the configured account.
func (a *Authenticator) Authenticate(username, password string) error {
	if subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) != 1 {
		a.logger.Warn().Str("username", username).Msg("unknown username")
		return model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		a.logger.Warn().Str("username", username).Msg("password mismatch")
		return model.ErrInvalidCredentials
	}

	return nil
}

// HashPassword returns the bcrypt hash of password at the given cost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

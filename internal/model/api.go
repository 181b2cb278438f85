package model

// TokenTypeBearer is the token_type of every issued access token.
const TokenTypeBearer = "bearer"

// TokenResponse is returned by the token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// APIInfo describes the API at its root path.
type APIInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

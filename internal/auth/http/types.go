package http

import "github.com/survey-manager/survey-backend/internal/auth"

const defaultUsername = "test_user"

type Handler struct {
	tokens *auth.TokenService
}

func New(tokens *auth.TokenService) *Handler {
	return &Handler{
		tokens: tokens,
	}
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

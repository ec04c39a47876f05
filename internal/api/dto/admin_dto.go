package dto

import (
	"time"

	"github.com/spec-kit/studio-api/internal/domain"
)

// AdminLoginRequest payload for the credential gate.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginResponse carries the issued token and identity.
type AdminLoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      domain.Identity `json:"user"`
}

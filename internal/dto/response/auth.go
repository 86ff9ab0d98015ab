package response

import (
	"time"

	"servisku/internal/data/entity"
)

type AuthResponse struct {
	User    UserResponse     `json:"user"`
	Session *SessionResponse `json:"session,omitempty"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func SessionToResponse(session *entity.Session) *SessionResponse {
	if session == nil {
		return nil
	}
	return &SessionResponse{
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
	}
}

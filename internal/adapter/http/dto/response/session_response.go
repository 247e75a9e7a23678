package response

import (
	"fieldservice/internal/domain/entities"
	"time"
)

type SessionResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// UserResponse never carries credentials.
type UserResponse struct {
	ID           string `json:"id"`
	NomeCompleto string `json:"nomeCompleto"`
	Username     string `json:"username,omitempty"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Status       string `json:"status"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		NomeCompleto: u.Name,
		Username:     u.Username,
		Email:        u.Email,
		Role:         u.Role,
		Status:       string(u.Status),
	}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

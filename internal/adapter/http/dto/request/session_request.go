package request

import "strings"

// LoginRequest is validated by the engine, not by binding tags, so that blank
// credentials surface as MissingCredentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterUserRequest struct {
	NomeCompleto string `json:"nomeCompleto"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Password     string `json:"password"`
}

func (r LoginRequest) Normalized() LoginRequest {
	r.Username = strings.TrimSpace(r.Username)
	return r
}

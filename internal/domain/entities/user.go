package entities

type UserStatus string

const (
	UserStatusActive   UserStatus = "Ativo"
	UserStatusInactive UserStatus = "Inativo"
)

// User is the operator record. Credentials live in a separate secret store
// keyed by Username and are never part of this struct.
type User struct {
	ID       string     `json:"id"`
	Name     string     `json:"nomeCompleto" validate:"required"`
	Username string     `json:"username,omitempty"`
	Email    string     `json:"email" validate:"required,email"`
	Role     string     `json:"role" validate:"required"`
	Status   UserStatus `json:"status"`
}

func (u User) Validate() error {
	return validateStruct(u)
}

package usecase

import (
	"errors"
	"fieldservice/internal/domain/entities"
	"fmt"
)

// Engine error taxonomy. Every operation fails with exactly one of these,
// possibly wrapped with detail via fmt.Errorf("%w: ...").
var (
	ErrNotFound           = errors.New("record not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrOriginNotFound     = errors.New("source document not found")
	ErrAlreadyInvoiced    = errors.New("source document already invoiced")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrEmailTaken         = errors.New("email already registered")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserInactive       = errors.New("user is inactive")
	ErrValidation         = entities.ErrValidation
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrClientNotFound, "ClientNotFound"},
	{ErrOriginNotFound, "OriginNotFound"},
	{ErrAlreadyInvoiced, "AlreadyInvoiced"},
	{ErrInvoiceNotFound, "InvoiceNotFound"},
	{ErrUsernameTaken, "UsernameTaken"},
	{ErrEmailTaken, "EmailTaken"},
	{ErrMissingCredentials, "MissingCredentials"},
	{ErrInvalidCredentials, "InvalidCredentials"},
	{ErrUserInactive, "UserInactive"},
	{ErrValidation, "ValidationError"},
	{ErrNotFound, "NotFound"},
}

// KindOf names the taxonomy entry of err, or "" for errors outside it.
func KindOf(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}

func invalidField(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func invalidTransition[S ~string](from, to S) error {
	return fmt.Errorf("%w: status cannot change from %q to %q", ErrValidation, from, to)
}

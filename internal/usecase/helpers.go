package usecase

import (
	"context"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// resolveClientName re-derives the cached display name for clientID, failing
// with ErrClientNotFound when the id does not resolve.
func resolveClientName(ctx context.Context, clients interfaces.IClientRepository, clientID string) (string, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return "", ErrClientNotFound
	}
	c, err := clients.GetByID(ctx, clientID)
	if err != nil {
		return "", err
	}
	if c.ID == "" {
		return "", ErrClientNotFound
	}
	return entities.DisplayName(&c, entities.UnknownClientName), nil
}

// currentClientName is the update-path variant of resolveClientName: a client
// that no longer resolves yields UnknownClientName instead of an error.
func currentClientName(ctx context.Context, clients interfaces.IClientRepository, clientID string) (string, error) {
	c, err := clients.GetByID(ctx, strings.TrimSpace(clientID))
	if err != nil {
		return "", err
	}
	if c.ID == "" {
		return entities.UnknownClientName, nil
	}
	return entities.DisplayName(&c, entities.UnknownClientName), nil
}

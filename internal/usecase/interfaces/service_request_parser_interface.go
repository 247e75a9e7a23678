package interfaces

import (
	"context"
	"fieldservice/internal/domain/entities"
)

//go:generate mockgen -source=service_request_parser_interface.go -destination=mocks/service_request_parser_interface_mock.go -package=mocks
// IServiceRequestParser turns a free-text service request into a suggested
// service type and technical notes. Implementations are best-effort: a nil
// suggestion with a nil error means "nothing useful found".
type IServiceRequestParser interface {
	Parse(ctx context.Context, description string) (*entities.ServiceSuggestion, error)
}

package interfaces

import (
	"context"
	"fieldservice/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mocks
// IPaymentInstrumentGateway produces the boleto / PIX data printed on an invoice.
//
// The shipped implementation synthesizes placeholders; no money moves.
type IPaymentInstrumentGateway interface {
	Instruments(ctx context.Context, dueDate time.Time, total decimal.Decimal) (entities.PaymentData, error)
}

// IFiscalNoteIssuer produces the NF-e metadata attached to an invoice.
type IFiscalNoteIssuer interface {
	IssueAccessKey(ctx context.Context) (string, error)
}

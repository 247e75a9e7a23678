package request

import (
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/shopspring/decimal"
)

type IssueInvoiceRequest struct {
	OriginType entities.OriginType `json:"originType"`
	OriginID   string              `json:"originId"`
	Items      []LineItemRequest   `json:"items"`
	Total      decimal.Decimal     `json:"total"`
}

func (r IssueInvoiceRequest) ToInput() usecase.IssueInvoiceInput {
	return usecase.IssueInvoiceInput{
		OriginID:   r.OriginID,
		OriginType: r.OriginType,
		Items:      toLineItems(r.Items),
		Total:      r.Total,
	}
}

type InvoiceStatusRequest struct {
	PaymentStatus entities.InvoicePaymentStatus `json:"paymentStatus" binding:"required"`
}

package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "Rascunho"
	QuoteStatusSent     QuoteStatus = "Enviado"
	QuoteStatusAccepted QuoteStatus = "Aceito"
	QuoteStatusRejected QuoteStatus = "Recusado"
)

// Quote (orçamento) lists priced items for a client.
//
// Subtotal, Discount and Total are caller-supplied and trusted; the engine
// never recomputes them.
type Quote struct {
	ID                   string          `json:"id"`
	QuoteNumber          string          `json:"quoteNumber"`
	ClientID             string          `json:"clientId"`
	ClientName           string          `json:"clientName"`
	QuoteDate            time.Time       `json:"quoteDate"`
	ValidUntil           *time.Time      `json:"validUntil,omitempty"`
	Items                []LineItem      `json:"items"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	Discount             decimal.Decimal `json:"discount"`
	Total                decimal.Decimal `json:"total"`
	Observations         string          `json:"observations,omitempty"`
	CommercialConditions string          `json:"commercialConditions,omitempty"`
	Status               QuoteStatus     `json:"status"`
	InvoiceID            string          `json:"invoiceId,omitempty"`
}

func (q Quote) Validate() error {
	if strings.TrimSpace(q.ClientID) == "" {
		return invalid("clientId is required")
	}
	if !q.Status.Valid() {
		return invalid("unknown quote status %q", q.Status)
	}
	if err := ValidateItems(q.Items); err != nil {
		return err
	}
	for field, v := range map[string]decimal.Decimal{"subtotal": q.Subtotal, "discount": q.Discount, "total": q.Total} {
		if err := nonNegative(field, v); err != nil {
			return err
		}
	}
	return nil
}

// QuotedLater orders quotes by quote date, latest first.
func QuotedLater(a, b Quote) bool {
	return a.QuoteDate.After(b.QuoteDate)
}

func (q Quote) Billable() bool {
	return q.Status == QuoteStatusAccepted && q.InvoiceID == ""
}

func (q Quote) Clone() Quote {
	out := q
	out.Items = cloneItems(q.Items)
	if q.ValidUntil != nil {
		t := *q.ValidUntil
		out.ValidUntil = &t
	}
	return out
}

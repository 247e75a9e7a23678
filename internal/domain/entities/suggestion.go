package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceSuggestion is a best-effort enrichment of a free-text service request.
type ServiceSuggestion struct {
	ServiceType string `json:"serviceType"`
	Notes       string `json:"notes"`
}

// BillableDocument is a source document waiting to be invoiced.
type BillableDocument struct {
	OriginType OriginType      `json:"originType"`
	OriginID   string          `json:"originId"`
	Number     string          `json:"number"`
	ClientName string          `json:"clientName"`
	Date       time.Time       `json:"date"`
	Value      decimal.Decimal `json:"value"`
}

package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type MaintenanceStatus string

const (
	MaintenanceStatusActive   MaintenanceStatus = "Ativo"
	MaintenanceStatusExpired  MaintenanceStatus = "Expirado"
	MaintenanceStatusCanceled MaintenanceStatus = "Cancelado"
)

// MaintenanceContract is a recurring support agreement. Expiry is a status set
// by the caller; it is not derived from EndDate.
type MaintenanceContract struct {
	ID             string            `json:"id"`
	ContractNumber string            `json:"contractNumber"`
	ClientID       string            `json:"clientId"`
	ClientName     string            `json:"clientName"`
	Type           string            `json:"type"`
	StartDate      time.Time         `json:"startDate"`
	EndDate        time.Time         `json:"endDate"`
	MonthlyValue   decimal.Decimal   `json:"monthlyValue"`
	Scope          string            `json:"scope,omitempty"`
	Status         MaintenanceStatus `json:"status"`
}

func (m MaintenanceContract) Validate() error {
	if strings.TrimSpace(m.ClientID) == "" {
		return invalid("clientId is required")
	}
	if m.EndDate.Before(m.StartDate) {
		return invalid("endDate must not be before startDate")
	}
	return nonNegative("monthlyValue", m.MonthlyValue)
}

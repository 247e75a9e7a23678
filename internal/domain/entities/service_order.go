package entities

import (
	"strings"
	"time"
)

type ServiceOrderStatus string

const (
	ServiceOrderStatusPending    ServiceOrderStatus = "Pendente"
	ServiceOrderStatusInProgress ServiceOrderStatus = "Em Andamento"
	ServiceOrderStatusCompleted  ServiceOrderStatus = "Concluída"
	ServiceOrderStatusCanceled   ServiceOrderStatus = "Cancelada"
)

// ServiceOrder (ordem de serviço) is a field visit for one client.
//
// ClientName is denormalized at write time. InvoiceID is the back-reference
// that marks the order as billed; once set it never reverts.
type ServiceOrder struct {
	ID                 string             `json:"id"`
	ServiceOrderNumber string             `json:"serviceOrderNumber"`
	ClientID           string             `json:"clientId"`
	ClientName         string             `json:"clientName"`
	RequestDescription string             `json:"requestDescription"`
	ServiceType        string             `json:"serviceType"`
	Location           string             `json:"location"`
	ScheduledDate      time.Time          `json:"scheduledDate"`
	Notes              string             `json:"notes,omitempty"`
	Technician         string             `json:"technician,omitempty"`
	Status             ServiceOrderStatus `json:"status"`
	CompletedAt        *time.Time         `json:"completedAt,omitempty"`
	InvoiceID          string             `json:"invoiceId,omitempty"`
}

func (o ServiceOrder) Validate() error {
	if strings.TrimSpace(o.ClientID) == "" {
		return invalid("clientId is required")
	}
	if !o.Status.Valid() {
		return invalid("unknown service order status %q", o.Status)
	}
	return nil
}

// Billable reports whether the order can be turned into an invoice.
// ScheduledLater orders service orders by scheduled date, latest first.
func ScheduledLater(a, b ServiceOrder) bool {
	return a.ScheduledDate.After(b.ScheduledDate)
}

func (o ServiceOrder) Billable() bool {
	return o.Status == ServiceOrderStatusCompleted && o.InvoiceID == ""
}

func (o ServiceOrder) Clone() ServiceOrder {
	out := o
	if o.CompletedAt != nil {
		t := *o.CompletedAt
		out.CompletedAt = &t
	}
	return out
}

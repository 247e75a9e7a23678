package request

import (
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"
	"time"

	"github.com/shopspring/decimal"
)

type CreateServiceOrderRequest struct {
	ClientID           string    `json:"clientId"`
	RequestDescription string    `json:"requestDescription"`
	ServiceType        string    `json:"serviceType"`
	Location           string    `json:"location"`
	ScheduledDate      time.Time `json:"scheduledDate"`
	Notes              string    `json:"notes"`
	Technician         string    `json:"technician"`
}

func (r CreateServiceOrderRequest) ToInput() usecase.CreateServiceOrderInput {
	return usecase.CreateServiceOrderInput{
		ClientID:           r.ClientID,
		RequestDescription: r.RequestDescription,
		ServiceType:        r.ServiceType,
		Location:           r.Location,
		ScheduledDate:      r.ScheduledDate,
		Notes:              r.Notes,
		Technician:         r.Technician,
	}
}

// UpdateServiceOrderRequest replaces the caller-owned fields. Number, client
// name and invoice reference are owned by the engine and not accepted here.
type UpdateServiceOrderRequest struct {
	CreateServiceOrderRequest
	Status      entities.ServiceOrderStatus `json:"status"`
	CompletedAt *time.Time                  `json:"completedAt"`
}

func (r UpdateServiceOrderRequest) ToEntity(id string) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:                 id,
		ClientID:           r.ClientID,
		RequestDescription: r.RequestDescription,
		ServiceType:        r.ServiceType,
		Location:           r.Location,
		ScheduledDate:      r.ScheduledDate,
		Notes:              r.Notes,
		Technician:         r.Technician,
		Status:             r.Status,
		CompletedAt:        r.CompletedAt,
	}
}

type SuggestServiceRequest struct {
	RequestDescription string `json:"requestDescription"`
}

type LineItemRequest struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

func toLineItems(items []LineItemRequest) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return out
}

type QuoteRequest struct {
	ClientID             string               `json:"clientId"`
	QuoteDate            *time.Time           `json:"quoteDate"`
	ValidUntil           *time.Time           `json:"validUntil"`
	Items                []LineItemRequest    `json:"items"`
	Subtotal             decimal.Decimal      `json:"subtotal"`
	Discount             decimal.Decimal      `json:"discount"`
	Total                decimal.Decimal      `json:"total"`
	Observations         string               `json:"observations"`
	CommercialConditions string               `json:"commercialConditions"`
	Status               entities.QuoteStatus `json:"status"`
}

func (r QuoteRequest) ToCreateInput() usecase.CreateQuoteInput {
	in := usecase.CreateQuoteInput{
		ClientID:             r.ClientID,
		ValidUntil:           r.ValidUntil,
		Items:                toLineItems(r.Items),
		Subtotal:             r.Subtotal,
		Discount:             r.Discount,
		Total:                r.Total,
		Observations:         r.Observations,
		CommercialConditions: r.CommercialConditions,
	}
	if r.QuoteDate != nil {
		in.QuoteDate = *r.QuoteDate
	}
	return in
}

func (r QuoteRequest) ToEntity(id string) entities.Quote {
	q := entities.Quote{
		ID:                   id,
		ClientID:             r.ClientID,
		ValidUntil:           r.ValidUntil,
		Items:                toLineItems(r.Items),
		Subtotal:             r.Subtotal,
		Discount:             r.Discount,
		Total:                r.Total,
		Observations:         r.Observations,
		CommercialConditions: r.CommercialConditions,
		Status:               r.Status,
	}
	if r.QuoteDate != nil {
		q.QuoteDate = *r.QuoteDate
	}
	return q
}

type MaintenanceContractRequest struct {
	ClientID     string          `json:"clientId"`
	Type         string          `json:"type"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	MonthlyValue decimal.Decimal `json:"monthlyValue"`
	Scope        string          `json:"scope"`
}

func (r MaintenanceContractRequest) ToInput() usecase.CreateMaintenanceContractInput {
	return usecase.CreateMaintenanceContractInput{
		ClientID:     r.ClientID,
		Type:         r.Type,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		MonthlyValue: r.MonthlyValue,
		Scope:        r.Scope,
	}
}

type MaintenanceStatusRequest struct {
	Status entities.MaintenanceStatus `json:"status" binding:"required"`
}

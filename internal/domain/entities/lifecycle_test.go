package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServiceOrderStatus_CanTransitionTo(t *testing.T) {
	allowed := map[ServiceOrderStatus][]ServiceOrderStatus{
		ServiceOrderStatusPending:    {ServiceOrderStatusPending, ServiceOrderStatusInProgress, ServiceOrderStatusCanceled},
		ServiceOrderStatusInProgress: {ServiceOrderStatusInProgress, ServiceOrderStatusCompleted, ServiceOrderStatusCanceled},
		ServiceOrderStatusCompleted:  {ServiceOrderStatusCompleted},
		ServiceOrderStatusCanceled:   {ServiceOrderStatusCanceled},
	}
	all := []ServiceOrderStatus{ServiceOrderStatusPending, ServiceOrderStatusInProgress, ServiceOrderStatusCompleted, ServiceOrderStatusCanceled}
	for from, targets := range allowed {
		for _, to := range all {
			assert.Equal(t, contains(targets, to), from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestQuoteStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, QuoteStatusDraft.CanTransitionTo(QuoteStatusSent))
	assert.True(t, QuoteStatusSent.CanTransitionTo(QuoteStatusAccepted))
	assert.True(t, QuoteStatusSent.CanTransitionTo(QuoteStatusRejected))
	assert.False(t, QuoteStatusDraft.CanTransitionTo(QuoteStatusAccepted))
	assert.False(t, QuoteStatusAccepted.CanTransitionTo(QuoteStatusDraft))
	assert.False(t, QuoteStatusRejected.CanTransitionTo(QuoteStatusSent))
}

func TestMaintenanceStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, MaintenanceStatusActive.CanTransitionTo(MaintenanceStatusExpired))
	assert.True(t, MaintenanceStatusActive.CanTransitionTo(MaintenanceStatusCanceled))
	assert.False(t, MaintenanceStatusExpired.CanTransitionTo(MaintenanceStatusActive))
	assert.False(t, MaintenanceStatusCanceled.CanTransitionTo(MaintenanceStatusExpired))
}

func TestCanChangePaymentStatus(t *testing.T) {
	assert.True(t, CanChangePaymentStatus(InvoicePaymentStatusPending, InvoicePaymentStatusPaid))
	assert.True(t, CanChangePaymentStatus(InvoicePaymentStatusPaid, InvoicePaymentStatusPending))
	assert.True(t, CanChangePaymentStatus(InvoicePaymentStatusOverdue, InvoicePaymentStatusCanceled))
	assert.False(t, CanChangePaymentStatus(InvoicePaymentStatusPending, "Estornado"))
}

func TestBillable(t *testing.T) {
	assert.True(t, ServiceOrder{Status: ServiceOrderStatusCompleted}.Billable())
	assert.False(t, ServiceOrder{Status: ServiceOrderStatusCompleted, InvoiceID: "inv-1"}.Billable())
	assert.False(t, ServiceOrder{Status: ServiceOrderStatusInProgress}.Billable())
	assert.True(t, Quote{Status: QuoteStatusAccepted}.Billable())
	assert.False(t, Quote{Status: QuoteStatusSent}.Billable())
}

func TestDueDateFor(t *testing.T) {
	issued := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 7, 16, 12, 0, 0, 0, time.UTC), DueDateFor(issued))
}

func contains[S comparable](list []S, v S) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

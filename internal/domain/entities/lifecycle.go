package entities

// Status tables. A status may always "transition" to itself so that an update
// without status change is accepted.

var serviceOrderTransitions = map[ServiceOrderStatus][]ServiceOrderStatus{
	ServiceOrderStatusPending:    {ServiceOrderStatusInProgress, ServiceOrderStatusCanceled},
	ServiceOrderStatusInProgress: {ServiceOrderStatusCompleted, ServiceOrderStatusCanceled},
}

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusDraft: {QuoteStatusSent},
	QuoteStatusSent:  {QuoteStatusAccepted, QuoteStatusRejected},
}

var maintenanceTransitions = map[MaintenanceStatus][]MaintenanceStatus{
	MaintenanceStatusActive: {MaintenanceStatusExpired, MaintenanceStatusCanceled},
}

func allowed[S comparable](table map[S][]S, from, to S) bool {
	if from == to {
		return true
	}
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s ServiceOrderStatus) Valid() bool {
	switch s {
	case ServiceOrderStatusPending, ServiceOrderStatusInProgress, ServiceOrderStatusCompleted, ServiceOrderStatusCanceled:
		return true
	}
	return false
}

func (s ServiceOrderStatus) CanTransitionTo(next ServiceOrderStatus) bool {
	return allowed(serviceOrderTransitions, s, next)
}

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected:
		return true
	}
	return false
}

func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	return allowed(quoteTransitions, s, next)
}

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusActive, MaintenanceStatusExpired, MaintenanceStatusCanceled:
		return true
	}
	return false
}

func (s MaintenanceStatus) CanTransitionTo(next MaintenanceStatus) bool {
	return allowed(maintenanceTransitions, s, next)
}

func (s InvoicePaymentStatus) Valid() bool {
	switch s {
	case InvoicePaymentStatusPending, InvoicePaymentStatusPaid, InvoicePaymentStatusOverdue, InvoicePaymentStatusCanceled:
		return true
	}
	return false
}

// CanChangePaymentStatus is the single policy point for invoice payment status
// changes. It currently accepts any known status from any other.
func CanChangePaymentStatus(from, to InvoicePaymentStatus) bool {
	return to.Valid()
}

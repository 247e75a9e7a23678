package usecase

import (
	"context"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"fmt"
	"slices"
	"strings"
)

//go:generate mockgen -source=report_usecase.go -destination=../adapter/http/handlers/mocks/report_usecase_mock.go -package=mocks
type IReportUseCase interface {
	FindDocumentByNumber(ctx context.Context, kind entities.DocumentKind, number string) (entities.DocumentMatch, error)
	ServiceOrderDashboard(ctx context.Context) (entities.ServiceOrderDashboard, error)
}

type ReportUseCase struct {
	serviceOrders interfaces.IServiceOrderRepository
	quotes        interfaces.IQuoteRepository
	contracts     interfaces.IMaintenanceContractRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	serviceOrders interfaces.IServiceOrderRepository,
	quotes interfaces.IQuoteRepository,
	contracts interfaces.IMaintenanceContractRepository,
) *ReportUseCase {
	return &ReportUseCase{serviceOrders: serviceOrders, quotes: quotes, contracts: contracts}
}

// FindDocumentByNumber matches number case-insensitively and exactly.
func (u *ReportUseCase) FindDocumentByNumber(ctx context.Context, kind entities.DocumentKind, number string) (entities.DocumentMatch, error) {
	number = strings.TrimSpace(number)
	if !kind.Valid() {
		return entities.DocumentMatch{}, invalidField(fmt.Sprintf("unknown document type %q", kind))
	}
	if number == "" {
		return entities.DocumentMatch{}, invalidField("number is required")
	}

	match := entities.DocumentMatch{Kind: kind}
	switch kind {
	case entities.DocumentKindServiceOrder:
		orders, err := u.serviceOrders.List(ctx)
		if err != nil {
			return entities.DocumentMatch{}, err
		}
		if i := slices.IndexFunc(orders, func(o entities.ServiceOrder) bool {
			return strings.EqualFold(o.ServiceOrderNumber, number)
		}); i >= 0 {
			match.ServiceOrder = &orders[i]
		}
	case entities.DocumentKindQuote:
		quotes, err := u.quotes.List(ctx)
		if err != nil {
			return entities.DocumentMatch{}, err
		}
		if i := slices.IndexFunc(quotes, func(q entities.Quote) bool {
			return strings.EqualFold(q.QuoteNumber, number)
		}); i >= 0 {
			match.Quote = &quotes[i]
		}
	case entities.DocumentKindMaintenanceContract:
		contracts, err := u.contracts.List(ctx)
		if err != nil {
			return entities.DocumentMatch{}, err
		}
		if i := slices.IndexFunc(contracts, func(m entities.MaintenanceContract) bool {
			return strings.EqualFold(m.ContractNumber, number)
		}); i >= 0 {
			match.MaintenanceContract = &contracts[i]
		}
	}

	if match.ServiceOrder == nil && match.Quote == nil && match.MaintenanceContract == nil {
		return entities.DocumentMatch{}, ErrNotFound
	}
	return match, nil
}

func (u *ReportUseCase) ServiceOrderDashboard(ctx context.Context) (entities.ServiceOrderDashboard, error) {
	orders, err := u.serviceOrders.List(ctx)
	if err != nil {
		return entities.ServiceOrderDashboard{}, err
	}

	d := entities.ServiceOrderDashboard{
		Total: len(orders),
		ByStatus: map[entities.ServiceOrderStatus]int{
			entities.ServiceOrderStatusPending:    0,
			entities.ServiceOrderStatusInProgress: 0,
			entities.ServiceOrderStatusCompleted:  0,
			entities.ServiceOrderStatusCanceled:   0,
		},
	}
	for _, o := range orders {
		d.ByStatus[o.Status]++
	}

	recent := slices.Clone(orders)
	slices.SortStableFunc(recent, func(a, b entities.ServiceOrder) int {
		return b.ScheduledDate.Compare(a.ScheduledDate)
	})
	if len(recent) > entities.DashboardRecentLimit {
		recent = recent[:entities.DashboardRecentLimit]
	}
	d.Recent = recent
	return d, nil
}

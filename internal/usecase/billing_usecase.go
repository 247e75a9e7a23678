package usecase

import (
	"context"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/domain/numbering"
	"fieldservice/internal/usecase/interfaces"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type IssueInvoiceInput struct {
	OriginID   string
	OriginType entities.OriginType
	Items      []entities.LineItem
	Total      decimal.Decimal
}

//go:generate mockgen -source=billing_usecase.go -destination=../adapter/http/handlers/mocks/billing_usecase_mock.go -package=mocks
type IBillingUseCase interface {
	IssueInvoice(ctx context.Context, in IssueInvoiceInput) (entities.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status entities.InvoicePaymentStatus) (entities.Invoice, error)
	ListInvoices(ctx context.Context) ([]entities.Invoice, error)
	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
	ListBillable(ctx context.Context) ([]entities.BillableDocument, error)
	DefaultInvoiceItems(ctx context.Context, originType entities.OriginType, originID string) ([]entities.LineItem, error)
}

// BillingDeps groups the collaborators of the billing engine.
type BillingDeps struct {
	Invoices      interfaces.IInvoiceRepository
	ServiceOrders interfaces.IServiceOrderRepository
	Quotes        interfaces.IQuoteRepository
	Clients       interfaces.IClientRepository
	Writer        interfaces.IWriteSerializer
	Sequence      *numbering.Sequence
	Instruments   interfaces.IPaymentInstrumentGateway
	FiscalNotes   interfaces.IFiscalNoteIssuer
}

type BillingUseCase struct {
	BillingDeps
	logger *zap.Logger
	now    func() time.Time
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(deps BillingDeps, logger *zap.Logger) *BillingUseCase {
	return &BillingUseCase{BillingDeps: deps, logger: orNop(logger), now: time.Now}
}

// source is the billable view shared by service orders and quotes.
type source struct {
	clientID  string
	invoiceID string
	// markInvoiced writes the invoice back-reference; restore undoes it.
	markInvoiced func(ctx context.Context, invoiceID string) error
	restore      func(ctx context.Context) error
}

func (u *BillingUseCase) resolveSource(ctx context.Context, t entities.OriginType, id string) (source, error) {
	switch t {
	case entities.OriginTypeServiceOrder:
		o, err := u.ServiceOrders.GetByID(ctx, id)
		if err != nil {
			return source{}, err
		}
		if o.ID == "" {
			return source{}, ErrOriginNotFound
		}
		return source{
			clientID:  o.ClientID,
			invoiceID: o.InvoiceID,
			markInvoiced: func(ctx context.Context, invoiceID string) error {
				next := o.Clone()
				next.InvoiceID = invoiceID
				_, err := u.ServiceOrders.Update(ctx, next)
				return err
			},
			restore: func(ctx context.Context) error {
				_, err := u.ServiceOrders.Update(ctx, o)
				return err
			},
		}, nil
	case entities.OriginTypeQuote:
		q, err := u.Quotes.GetByID(ctx, id)
		if err != nil {
			return source{}, err
		}
		if q.ID == "" {
			return source{}, ErrOriginNotFound
		}
		return source{
			clientID:  q.ClientID,
			invoiceID: q.InvoiceID,
			markInvoiced: func(ctx context.Context, invoiceID string) error {
				next := q.Clone()
				next.InvoiceID = invoiceID
				_, err := u.Quotes.Update(ctx, next)
				return err
			},
			restore: func(ctx context.Context) error {
				_, err := u.Quotes.Update(ctx, q)
				return err
			},
		}, nil
	}
	return source{}, invalidField(fmt.Sprintf("unknown origin type %q", t))
}

// IssueInvoice turns a source document into an invoice. At most one invoice
// is ever issued per source: the back-reference check and both writes run in
// the same serialized section.
func (u *BillingUseCase) IssueInvoice(ctx context.Context, in IssueInvoiceInput) (entities.Invoice, error) {
	originID := strings.TrimSpace(in.OriginID)
	log := u.logger.With(zap.String("origin_type", string(in.OriginType)), zap.String("origin_id", originID))
	log.Info("[billing][usecase] issue invoice start")

	if !in.OriginType.Valid() {
		return entities.Invoice{}, invalidField(fmt.Sprintf("unknown origin type %q", in.OriginType))
	}
	if originID == "" {
		return entities.Invoice{}, ErrOriginNotFound
	}
	if err := entities.ValidateItems(in.Items); err != nil {
		return entities.Invoice{}, err
	}
	if in.Total.IsNegative() {
		return entities.Invoice{}, invalidField("total must not be negative")
	}

	var issued entities.Invoice
	err := u.Writer.Serialize(ctx, func(ctx context.Context) error {
		src, err := u.resolveSource(ctx, in.OriginType, originID)
		if err != nil {
			return err
		}
		if src.invoiceID != "" {
			return ErrAlreadyInvoiced
		}

		client, err := u.Clients.GetByID(ctx, src.clientID)
		if err != nil {
			return err
		}
		if client.ID == "" {
			return ErrClientNotFound
		}

		issueDate := u.now().UTC()
		dueDate := entities.DueDateFor(issueDate)
		accessKey, err := u.FiscalNotes.IssueAccessKey(ctx)
		if err != nil {
			return fmt.Errorf("issue nfe access key: %w", err)
		}
		payment, err := u.Instruments.Instruments(ctx, dueDate, in.Total)
		if err != nil {
			return fmt.Errorf("build payment instruments: %w", err)
		}

		inv := entities.Invoice{
			ID:            newID("inv"),
			InvoiceNumber: u.Sequence.Next(numbering.Invoices),
			OriginType:    in.OriginType,
			OriginID:      originID,
			ClientID:      client.ID,
			ClientName:    entities.DisplayName(&client, entities.InvoiceUnknownClientName),
			IssueDate:     issueDate,
			DueDate:       dueDate,
			Items:         withItemIDs(in.Items),
			Total:         in.Total,
			PaymentStatus: entities.InvoicePaymentStatusPending,
			NFeData:       entities.NFeData{AccessKey: accessKey},
			PaymentData:   payment,
		}

		if err := src.markInvoiced(ctx, inv.ID); err != nil {
			u.Sequence.Rollback(numbering.Invoices, inv.InvoiceNumber)
			return err
		}
		issued, err = u.Invoices.Create(ctx, inv)
		if err != nil {
			u.Sequence.Rollback(numbering.Invoices, inv.InvoiceNumber)
			if rerr := src.restore(ctx); rerr != nil {
				log.Error("[billing][usecase] failed to restore source document", zap.Error(rerr))
			}
			return err
		}
		return nil
	})
	if err != nil {
		log.Warn("[billing][usecase] issue invoice failed", zap.Error(err))
		return entities.Invoice{}, err
	}
	log.Info("[billing][usecase] invoice issued",
		zap.String("invoice_id", issued.ID),
		zap.String("invoice_number", issued.InvoiceNumber))
	return issued, nil
}

func (u *BillingUseCase) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status entities.InvoicePaymentStatus) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	var updated entities.Invoice
	err := u.Writer.Serialize(ctx, func(ctx context.Context) error {
		inv, err := u.Invoices.GetByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if inv.ID == "" {
			return ErrInvoiceNotFound
		}
		if !entities.CanChangePaymentStatus(inv.PaymentStatus, status) {
			return invalidTransition(inv.PaymentStatus, status)
		}
		inv.PaymentStatus = status
		if _, err := u.Invoices.Update(ctx, inv); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		u.logger.Warn("[billing][usecase] update invoice status failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		return entities.Invoice{}, err
	}
	u.logger.Info("[billing][usecase] invoice status updated",
		zap.String("invoice_id", invoiceID),
		zap.String("status", string(status)))
	return updated, nil
}

func (u *BillingUseCase) ListInvoices(ctx context.Context) ([]entities.Invoice, error) {
	return u.Invoices.List(ctx)
}

func (u *BillingUseCase) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	inv, err := u.Invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// ListBillable returns completed orders and accepted quotes that carry no
// invoice yet, most recent first.
func (u *BillingUseCase) ListBillable(ctx context.Context) ([]entities.BillableDocument, error) {
	orders, err := u.ServiceOrders.List(ctx)
	if err != nil {
		return nil, err
	}
	quotes, err := u.Quotes.List(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]entities.BillableDocument, 0)
	for _, o := range orders {
		if !o.Billable() {
			continue
		}
		date := o.ScheduledDate
		if o.CompletedAt != nil {
			date = *o.CompletedAt
		}
		pending = append(pending, entities.BillableDocument{
			OriginType: entities.OriginTypeServiceOrder,
			OriginID:   o.ID,
			Number:     o.ServiceOrderNumber,
			ClientName: o.ClientName,
			Date:       date,
			Value:      decimal.Zero,
		})
	}
	for _, q := range quotes {
		if !q.Billable() {
			continue
		}
		pending = append(pending, entities.BillableDocument{
			OriginType: entities.OriginTypeQuote,
			OriginID:   q.ID,
			Number:     q.QuoteNumber,
			ClientName: q.ClientName,
			Date:       q.QuoteDate,
			Value:      q.Total,
		})
	}
	slices.SortStableFunc(pending, func(a, b entities.BillableDocument) int {
		return b.Date.Compare(a.Date)
	})
	return pending, nil
}

// DefaultInvoiceItems proposes the lines of a new invoice: the quote's own
// items, or a single descriptive line for a service order.
func (u *BillingUseCase) DefaultInvoiceItems(ctx context.Context, originType entities.OriginType, originID string) ([]entities.LineItem, error) {
	originID = strings.TrimSpace(originID)
	switch originType {
	case entities.OriginTypeQuote:
		q, err := u.Quotes.GetByID(ctx, originID)
		if err != nil {
			return nil, err
		}
		if q.ID == "" {
			return nil, ErrOriginNotFound
		}
		return q.Clone().Items, nil
	case entities.OriginTypeServiceOrder:
		o, err := u.ServiceOrders.GetByID(ctx, originID)
		if err != nil {
			return nil, err
		}
		if o.ID == "" {
			return nil, ErrOriginNotFound
		}
		return []entities.LineItem{{
			ID:          newID("item"),
			Description: fmt.Sprintf("Serviço referente à OS #%s: %s", o.ServiceOrderNumber, o.ServiceType),
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.Zero,
		}}, nil
	}
	return nil, invalidField(fmt.Sprintf("unknown origin type %q", originType))
}

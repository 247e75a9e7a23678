package usecase

import (
	"context"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/domain/numbering"
	"fieldservice/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreateQuoteInput struct {
	ClientID             string
	QuoteDate            time.Time
	ValidUntil           *time.Time
	Items                []entities.LineItem
	Subtotal             decimal.Decimal
	Discount             decimal.Decimal
	Total                decimal.Decimal
	Observations         string
	CommercialConditions string
}

//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/quote_usecase_mock.go -package=mocks
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	UpdateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	clients interfaces.IClientRepository
	writer  interfaces.IWriteSerializer
	seq     *numbering.Sequence
	logger  *zap.Logger
	now     func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	clients interfaces.IClientRepository,
	writer interfaces.IWriteSerializer,
	seq *numbering.Sequence,
	logger *zap.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, clients: clients, writer: writer, seq: seq, logger: orNop(logger), now: time.Now}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	q := entities.Quote{
		ClientID:             strings.TrimSpace(in.ClientID),
		QuoteDate:            in.QuoteDate,
		ValidUntil:           in.ValidUntil,
		Items:                withItemIDs(in.Items),
		Subtotal:             in.Subtotal,
		Discount:             in.Discount,
		Total:                in.Total,
		Observations:         in.Observations,
		CommercialConditions: in.CommercialConditions,
		Status:               entities.QuoteStatusDraft,
	}
	if q.QuoteDate.IsZero() {
		q.QuoteDate = u.now().UTC()
	}

	var created entities.Quote
	err := u.writer.Serialize(ctx, func(ctx context.Context) error {
		var err error
		q.ClientName, err = resolveClientName(ctx, u.clients, q.ClientID)
		if err != nil {
			return err
		}
		if err := q.Validate(); err != nil {
			return err
		}

		q.ID = newID("qt")
		q.QuoteNumber = u.seq.Next(numbering.Quotes)
		created, err = u.repo.Create(ctx, q)
		if err != nil {
			u.seq.Rollback(numbering.Quotes, q.QuoteNumber)
		}
		return err
	})
	if err != nil {
		u.logger.Warn("[quote][usecase] create failed", zap.String("client_id", in.ClientID), zap.Error(err))
		return entities.Quote{}, err
	}
	u.logger.Info("[quote][usecase] create success", zap.String("quote_id", created.ID), zap.String("number", created.QuoteNumber))
	return created, nil
}

// UpdateQuote mirrors UpdateServiceOrder: number and invoice back-reference
// are preserved, client name re-derived, collection re-sorted by quote date.
func (u *QuoteUseCase) UpdateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.ID = strings.TrimSpace(q.ID)
	if q.ID == "" {
		return entities.Quote{}, ErrNotFound
	}

	var updated entities.Quote
	err := u.writer.Serialize(ctx, func(ctx context.Context) error {
		current, err := u.repo.GetByID(ctx, q.ID)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return ErrNotFound
		}

		next := q.Clone()
		next.Items = withItemIDs(next.Items)
		if next.Status == "" {
			next.Status = current.Status
		}
		if err := next.Validate(); err != nil {
			return err
		}
		if !current.Status.CanTransitionTo(next.Status) {
			return invalidTransition(current.Status, next.Status)
		}

		next.ClientName, err = currentClientName(ctx, u.clients, next.ClientID)
		if err != nil {
			return err
		}
		next.ClientID = strings.TrimSpace(next.ClientID)
		next.QuoteNumber = current.QuoteNumber
		next.InvoiceID = current.InvoiceID
		if next.QuoteDate.IsZero() {
			next.QuoteDate = current.QuoteDate
		}

		if _, err := u.repo.Update(ctx, next); err != nil {
			return err
		}
		updated = next
		return u.repo.Reorder(ctx, entities.QuotedLater)
	})
	if err != nil {
		u.logger.Warn("[quote][usecase] update failed", zap.String("quote_id", q.ID), zap.Error(err))
		return entities.Quote{}, err
	}
	u.logger.Info("[quote][usecase] updated", zap.String("quote_id", updated.ID), zap.String("status", string(updated.Status)))
	return updated, nil
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrNotFound
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrNotFound
	}
	return q, nil
}

func withItemIDs(items []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.ID) == "" {
			it.ID = newID("item")
		}
		out[i] = it
	}
	return out
}

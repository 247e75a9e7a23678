package payments

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	boletoBankPrefix = "23793.38128 60094.836171 63527.240008 5"
	boletoBarcodeURL = "https://via.placeholder.com/400x80.png?text=Simulated+Barcode"
	pixQRCodeURL     = "https://via.placeholder.com/200x200.png?text=Simulated+PIX+QR+Code"

	pixHeader  = "00020126580014br.gov.bcb.pix0136123e4567-e89b-12d3-a456-42661417400053039865802BR"
	pixTrailer = "62070503***6304E2A7"

	// DefaultMerchantName and DefaultMerchantCity select the fixed reference
	// payload below instead of a computed one.
	DefaultMerchantName = "NOME DA EMPRESA"
	DefaultMerchantCity = "SAO PAULO"

	// Verbatim, including its "5913" length prefix for a 15-character name.
	pixReferencePayload = pixHeader + "5913NOME DA EMPRESA6009SAO PAULO" + pixTrailer

	pixMaxName = 25
	pixMaxCity = 15
)

// PlaceholderGateway synthesizes boleto and PIX data that look like real
// instruments. Nothing is registered with a bank.
type PlaceholderGateway struct {
	pixCode string
	logger  *zap.Logger
}

var _ interfaces.IPaymentInstrumentGateway = (*PlaceholderGateway)(nil)

func NewPlaceholderGateway(merchantName, merchantCity string, logger *zap.Logger) *PlaceholderGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	name := truncate(strings.ToUpper(strings.TrimSpace(merchantName)), pixMaxName)
	city := truncate(strings.ToUpper(strings.TrimSpace(merchantCity)), pixMaxCity)
	return &PlaceholderGateway{pixCode: pixPayload(name, city), logger: logger}
}

func (g *PlaceholderGateway) Instruments(_ context.Context, dueDate time.Time, total decimal.Decimal) (entities.PaymentData, error) {
	if total.IsNegative() {
		return entities.PaymentData{}, fmt.Errorf("payment total must not be negative: %s", total)
	}
	data := entities.PaymentData{
		Boleto: entities.Boleto{
			LinhaDigitavel: BoletoLine(dueDate, total),
			BarcodeURL:     boletoBarcodeURL,
		},
		Pix: entities.Pix{
			QRCodeURL:  pixQRCodeURL,
			CopiaECola: g.pixCode,
		},
	}
	g.logger.Debug("[payment][gateway] placeholder instruments built",
		zap.Time("due_date", dueDate),
		zap.String("total", total.StringFixed(2)))
	return data, nil
}

// BoletoLine embeds the due date (unix millis) and the total in cents,
// zero-padded to 10 digits.
func BoletoLine(dueDate time.Time, total decimal.Decimal) string {
	cents := total.Shift(2).Round(0).String()
	if len(cents) < 10 {
		cents = strings.Repeat("0", 10-len(cents)) + cents
	}
	return fmt.Sprintf("%s %d00000%s", boletoBankPrefix, dueDate.UnixMilli(), cents)
}

// pixPayload returns the reference payload for the default merchant and a
// payload with EMV length-prefixed name and city fields otherwise.
func pixPayload(name, city string) string {
	if name == DefaultMerchantName && city == DefaultMerchantCity {
		return pixReferencePayload
	}
	return pixHeader + emvField("59", name) + emvField("60", city) + pixTrailer
}

func emvField(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, utf8.RuneCountInString(value), value)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		r = r[:max]
	}
	return string(r)
}

// AccessKeyIssuer produces NF-e access keys: opaque lowercase base36 tokens.
// Uniqueness comes from uuid entropy; they are not meant to be unguessable.
type AccessKeyIssuer struct{}

var _ interfaces.IFiscalNoteIssuer = AccessKeyIssuer{}

func (AccessKeyIssuer) IssueAccessKey(context.Context) (string, error) {
	var b strings.Builder
	for range 2 {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", err
		}
		b.WriteString(new(big.Int).SetBytes(id[:]).Text(36))
	}
	return b.String(), nil
}

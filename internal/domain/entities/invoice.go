package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OriginType string

const (
	OriginTypeServiceOrder OriginType = "serviceOrder"
	OriginTypeQuote        OriginType = "quote"
)

func (t OriginType) Valid() bool {
	return t == OriginTypeServiceOrder || t == OriginTypeQuote
}

type InvoicePaymentStatus string

const (
	InvoicePaymentStatusPending  InvoicePaymentStatus = "Pendente"
	InvoicePaymentStatusPaid     InvoicePaymentStatus = "Pago"
	InvoicePaymentStatusOverdue  InvoicePaymentStatus = "Vencido"
	InvoicePaymentStatusCanceled InvoicePaymentStatus = "Cancelado"
)

// InvoiceDueDays is the fixed payment term: DueDate = IssueDate + 15 days.
const InvoiceDueDays = 15

// InvoiceUnknownClientName is the fallback label used on invoices.
const InvoiceUnknownClientName = "Desconhecido"

type NFeData struct {
	AccessKey string `json:"accessKey"`
}

type Boleto struct {
	LinhaDigitavel string `json:"linhaDigitavel"`
	BarcodeURL     string `json:"barcodeUrl"`
}

type Pix struct {
	QRCodeURL  string `json:"qrCodeUrl"`
	CopiaECola string `json:"copiaECola"`
}

// PaymentData holds synthesized placeholders, not real financial instruments.
type PaymentData struct {
	Boleto Boleto `json:"boleto"`
	Pix    Pix    `json:"pix"`
}

// Invoice (fatura) is immutable except for PaymentStatus.
type Invoice struct {
	ID            string               `json:"id"`
	InvoiceNumber string               `json:"invoiceNumber"`
	OriginType    OriginType           `json:"originType"`
	OriginID      string               `json:"originId"`
	ClientID      string               `json:"clientId"`
	ClientName    string               `json:"clientName"`
	IssueDate     time.Time            `json:"issueDate"`
	DueDate       time.Time            `json:"dueDate"`
	Items         []LineItem           `json:"items"`
	Total         decimal.Decimal      `json:"total"`
	PaymentStatus InvoicePaymentStatus `json:"paymentStatus"`
	NFeData       NFeData              `json:"nfeData"`
	PaymentData   PaymentData          `json:"paymentData"`
}

// DueDateFor returns the due date for an invoice issued at issueDate.
func DueDateFor(issueDate time.Time) time.Time {
	return issueDate.Add(InvoiceDueDays * 24 * time.Hour)
}

func (i Invoice) Clone() Invoice {
	out := i
	out.Items = cloneItems(i.Items)
	return out
}

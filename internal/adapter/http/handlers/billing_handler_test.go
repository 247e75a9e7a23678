package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldservice/internal/adapter/http/handlers/mocks"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newBillingRouter(t *testing.T) (*gin.Engine, *mocks.MockIBillingUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBillingUseCase(ctrl)
	h := NewBillingHandler(uc)

	r := gin.New()
	r.GET("/v1/billing/pending", h.ListPending)
	r.GET("/v1/billing/pending/:origin_type/:origin_id/items", h.DefaultItems)
	r.POST("/v1/invoices", h.IssueInvoice)
	r.GET("/v1/invoices/:id", h.GetInvoice)
	r.PATCH("/v1/invoices/:id/status", h.UpdateInvoiceStatus)
	return r, uc
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestBillingHandler_IssueInvoice(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newBillingRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if kind := decodeError(t, w)["kind"]; kind != "ValidationError" {
			t.Fatalf("expected ValidationError, got %q", kind)
		}
	})

	t.Run("issues invoice", func(t *testing.T) {
		r, uc := newBillingRouter(t)
		uc.EXPECT().
			IssueInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in usecase.IssueInvoiceInput) (entities.Invoice, error) {
				if in.OriginType != entities.OriginTypeQuote || in.OriginID != "orc-1" {
					t.Fatalf("unexpected input %+v", in)
				}
				if len(in.Items) != 1 || !in.Total.Equal(decimal.NewFromInt(200)) {
					t.Fatalf("unexpected items/total %+v", in)
				}
				return entities.Invoice{
					ID:            "inv-1",
					InvoiceNumber: "000001",
					OriginType:    in.OriginType,
					OriginID:      in.OriginID,
					PaymentStatus: entities.InvoicePaymentStatusPending,
				}, nil
			})

		body := `{"originType":"quote","originId":"orc-1","items":[{"description":"Serviço","quantity":1,"unitPrice":200}],"total":200}`
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var inv entities.Invoice
		if err := json.Unmarshal(w.Body.Bytes(), &inv); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if inv.InvoiceNumber != "000001" || inv.PaymentStatus != entities.InvoicePaymentStatusPending {
			t.Fatalf("unexpected invoice %+v", inv)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"already invoiced", usecase.ErrAlreadyInvoiced, http.StatusConflict, "AlreadyInvoiced"},
		{"origin not found", fmt.Errorf("%w: orc-9", usecase.ErrOriginNotFound), http.StatusNotFound, "OriginNotFound"},
		{"client not found", usecase.ErrClientNotFound, http.StatusNotFound, "ClientNotFound"},
		{"validation", fmt.Errorf("%w: total must not be negative", usecase.ErrValidation), http.StatusBadRequest, "ValidationError"},
		{"unexpected", errors.New("dynamodb down"), http.StatusInternalServerError, "Internal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newBillingRouter(t)
			uc.EXPECT().IssueInvoice(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"originType":"quote","originId":"orc-1","total":0}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if kind := decodeError(t, w)["kind"]; kind != tc.kind {
				t.Fatalf("expected kind %q, got %q", tc.kind, kind)
			}
		})
	}
}

func TestBillingHandler_UpdateInvoiceStatus(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		r, _ := newBillingRouter(t)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown invoice", func(t *testing.T) {
		r, uc := newBillingRouter(t)
		uc.EXPECT().
			UpdateInvoiceStatus(gomock.Any(), "inv-x", entities.InvoicePaymentStatusPaid).
			Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-x/status", bytes.NewBufferString(`{"paymentStatus":"Pago"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body["kind"] != "InvoiceNotFound" || body["message"] != usecase.ErrInvoiceNotFound.Error() {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("marks paid", func(t *testing.T) {
		r, uc := newBillingRouter(t)
		uc.EXPECT().
			UpdateInvoiceStatus(gomock.Any(), "inv-1", entities.InvoicePaymentStatusPaid).
			Return(entities.Invoice{ID: "inv-1", PaymentStatus: entities.InvoicePaymentStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/invoices/inv-1/status", bytes.NewBufferString(`{"paymentStatus":"Pago"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBillingHandler_Reads(t *testing.T) {
	t.Run("pending list is wrapped", func(t *testing.T) {
		r, uc := newBillingRouter(t)
		uc.EXPECT().ListBillable(gomock.Any()).Return([]entities.BillableDocument{
			{OriginType: entities.OriginTypeQuote, OriginID: "orc-2", Number: "ORC-0002"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/billing/pending", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Items []entities.BillableDocument `json:"items"`
			Total int                         `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Total != 1 || body.Items[0].Number != "ORC-0002" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("default items forward path params", func(t *testing.T) {
		r, uc := newBillingRouter(t)
		uc.EXPECT().
			DefaultInvoiceItems(gomock.Any(), entities.OriginTypeServiceOrder, "os-1").
			Return([]entities.LineItem{{ID: "item-1", Description: "Serviço referente à OS #OS-0001: Reparo"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/billing/pending/serviceOrder/os-1/items", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get unknown invoice", func(t *testing.T) {
		r, uc := newBillingRouter(t)
		uc.EXPECT().GetInvoice(gomock.Any(), "inv-x").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

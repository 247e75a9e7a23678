package handlers

import (
	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/infrastructure/logger"
	"fieldservice/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingHandler exposes the billing engine: pending documents, invoice
// issuance and payment status.
type BillingHandler struct {
	usecase usecase.IBillingUseCase
}

func NewBillingHandler(uc usecase.IBillingUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

// ListPending godoc
// @Summary      Source documents waiting to be invoiced
// @Tags         billing
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.ListResponse[entities.BillableDocument]
// @Router       /billing/pending [get]
func (h *BillingHandler) ListPending(c *gin.Context) {
	docs, err := h.usecase.ListBillable(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.List(docs))
}

// DefaultItems godoc
// @Summary      Proposed invoice lines for a source document
// @Tags         billing
// @Produce      json
// @Security     Bearer
// @Param        origin_type  path      string  true  "serviceOrder | quote"
// @Param        origin_id    path      string  true  "Source document id"
// @Success      200          {object}  response.ListResponse[entities.LineItem]
// @Failure      404          {object}  pkg.HTTPError
// @Router       /billing/pending/{origin_type}/{origin_id}/items [get]
func (h *BillingHandler) DefaultItems(c *gin.Context) {
	items, err := h.usecase.DefaultInvoiceItems(c.Request.Context(),
		entities.OriginType(c.Param("origin_type")), c.Param("origin_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.List(items))
}

// IssueInvoice godoc
// @Summary      Issue the invoice of a completed service order or accepted quote
// @Description  At most one invoice per source document; a second call answers 409 AlreadyInvoiced.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.IssueInvoiceRequest  true  "Invoice"
// @Success      201   {object}  entities.Invoice
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /invoices [post]
func (h *BillingHandler) IssueInvoice(c *gin.Context) {
	var payload request.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	inv, err := h.usecase.IssueInvoice(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	logger.FromGin(c).Info("[billing][handler] invoice issued",
		zap.String("invoice_id", inv.ID),
		zap.String("origin_id", inv.OriginID))
	c.JSON(http.StatusCreated, inv)
}

// ListInvoices godoc
// @Summary      List invoices, newest first
// @Tags         invoices
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.ListResponse[entities.Invoice]
// @Router       /invoices [get]
func (h *BillingHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.ListInvoices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.List(invoices))
}

// GetInvoice godoc
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  entities.Invoice
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{id} [get]
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// UpdateInvoiceStatus godoc
// @Summary      Change the payment status of an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                        true  "Invoice id"
// @Param        body  body      request.InvoiceStatusRequest  true  "Payment status"
// @Success      200   {object}  entities.Invoice
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /invoices/{id}/status [patch]
func (h *BillingHandler) UpdateInvoiceStatus(c *gin.Context) {
	var payload request.InvoiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	inv, err := h.usecase.UpdateInvoiceStatus(c.Request.Context(), c.Param("id"), payload.PaymentStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

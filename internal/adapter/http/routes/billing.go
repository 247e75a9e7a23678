package routes

import (
	"fieldservice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBilling  = "/billing"
	PathInvoices = "/invoices"
)

func addBillingRoutes(rg *gin.RouterGroup, billingHandler *handlers.BillingHandler) {
	billing := rg.Group(PathBilling)
	{
		billing.GET("/pending", billingHandler.ListPending)
		billing.GET("/pending/:origin_type/:origin_id/items", billingHandler.DefaultItems)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", billingHandler.IssueInvoice)
		invoices.GET("", billingHandler.ListInvoices)
		invoices.GET("/:id", billingHandler.GetInvoice)
		invoices.PATCH("/:id/status", billingHandler.UpdateInvoiceStatus)
	}
}

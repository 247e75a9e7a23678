package routes

import (
	"fieldservice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders        = "/service-orders"
	PathQuotes               = "/quotes"
	PathMaintenanceContracts = "/maintenance-contracts"
)

func addDocumentRoutes(
	rg *gin.RouterGroup,
	serviceOrderHandler *handlers.ServiceOrderHandler,
	quoteHandler *handlers.QuoteHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", serviceOrderHandler.CreateServiceOrder)
		orders.POST("/suggest", serviceOrderHandler.SuggestServiceDetails)
		orders.GET("", serviceOrderHandler.ListServiceOrders)
		orders.GET("/:id", serviceOrderHandler.GetServiceOrder)
		orders.PUT("/:id", serviceOrderHandler.UpdateServiceOrder)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
	}

	contracts := rg.Group(PathMaintenanceContracts)
	{
		contracts.POST("", maintenanceHandler.CreateMaintenanceContract)
		contracts.GET("", maintenanceHandler.ListMaintenanceContracts)
		contracts.GET("/:id", maintenanceHandler.GetMaintenanceContract)
		contracts.PATCH("/:id/status", maintenanceHandler.UpdateMaintenanceContractStatus)
	}
}

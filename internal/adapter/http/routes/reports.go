package routes

import (
	"fieldservice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathReports = "/reports"

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/documents", reportHandler.FindDocument)
		reports.GET("/dashboard", reportHandler.Dashboard)
	}
}

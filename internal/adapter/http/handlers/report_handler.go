package handlers

import (
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// FindDocument godoc
// @Summary      Look a document up by its human-readable number
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Param        type    query     string  true  "serviceOrder | quote | maintenanceContract"
// @Param        number  query     string  true  "e.g. OS-0001"
// @Success      200     {object}  entities.DocumentMatch
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /reports/documents [get]
func (h *ReportHandler) FindDocument(c *gin.Context) {
	match, err := h.usecase.FindDocumentByNumber(c.Request.Context(),
		entities.DocumentKind(c.Query("type")), c.Query("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// Dashboard godoc
// @Summary      Service order counts per status and the most recent orders
// @Tags         reports
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  entities.ServiceOrderDashboard
// @Router       /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.usecase.ServiceOrderDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

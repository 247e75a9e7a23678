package handlers

import (
	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaintenanceHandler handles HTTP requests for maintenance contracts.
type MaintenanceHandler struct {
	usecase usecase.IMaintenanceUseCase
}

func NewMaintenanceHandler(uc usecase.IMaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{usecase: uc}
}

// CreateMaintenanceContract godoc
// @Summary      Create a maintenance contract
// @Tags         maintenance-contracts
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.MaintenanceContractRequest  true  "Contract"
// @Success      201   {object}  entities.MaintenanceContract
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /maintenance-contracts [post]
func (h *MaintenanceHandler) CreateMaintenanceContract(c *gin.Context) {
	var payload request.MaintenanceContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	contract, err := h.usecase.CreateMaintenanceContract(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

// UpdateMaintenanceContractStatus godoc
// @Summary      Change a contract status (Ativo -> Expirado | Cancelado)
// @Tags         maintenance-contracts
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                            true  "Contract id"
// @Param        body  body      request.MaintenanceStatusRequest  true  "Status"
// @Success      200   {object}  entities.MaintenanceContract
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /maintenance-contracts/{id}/status [patch]
func (h *MaintenanceHandler) UpdateMaintenanceContractStatus(c *gin.Context) {
	var payload request.MaintenanceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	contract, err := h.usecase.UpdateMaintenanceContractStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *MaintenanceHandler) ListMaintenanceContracts(c *gin.Context) {
	contracts, err := h.usecase.ListMaintenanceContracts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.List(contracts))
}

func (h *MaintenanceHandler) GetMaintenanceContract(c *gin.Context) {
	contract, err := h.usecase.GetMaintenanceContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

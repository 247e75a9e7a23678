package handlers

import (
	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceOrderHandler handles HTTP requests for service orders.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateServiceOrder godoc
// @Summary      Open a service order
// @Description  Assigns the next OS-#### number and caches the client display name.
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CreateServiceOrderRequest  true  "Service order"
// @Success      201   {object}  entities.ServiceOrder
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /service-orders [post]
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	order, err := h.usecase.CreateServiceOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// UpdateServiceOrder godoc
// @Summary      Replace a service order
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                             true  "Service order id"
// @Param        body  body      request.UpdateServiceOrderRequest  true  "Service order"
// @Success      200   {object}  entities.ServiceOrder
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /service-orders/{id} [put]
func (h *ServiceOrderHandler) UpdateServiceOrder(c *gin.Context) {
	var payload request.UpdateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	order, err := h.usecase.UpdateServiceOrder(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	orders, err := h.usecase.ListServiceOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.List(orders))
}

func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	order, err := h.usecase.GetServiceOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// SuggestServiceDetails godoc
// @Summary      Suggest service type and notes from a free-text request
// @Description  Best effort: 204 when nothing useful was found.
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.SuggestServiceRequest  true  "Request text"
// @Success      200   {object}  entities.ServiceSuggestion
// @Success      204
// @Failure      400   {object}  pkg.HTTPError
// @Router       /service-orders/suggest [post]
func (h *ServiceOrderHandler) SuggestServiceDetails(c *gin.Context) {
	var payload request.SuggestServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	suggestion, err := h.usecase.SuggestServiceDetails(c.Request.Context(), payload.RequestDescription)
	if err != nil {
		respondError(c, err)
		return
	}
	if suggestion == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

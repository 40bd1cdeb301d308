package http

import (
	"net/http"

	"github.com/gad/ecommerce-msvc/internal/adapter/dto"
	"github.com/gad/ecommerce-msvc/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// CreateOrder opens an empty order for the authenticated customer.
func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	customerID := getAuthPayload(ctx).CustomerID

	order, err := oh.service.CreateOrder(ctx, customerID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	ctx.Header("Location", "api/v1/orders/"+order.ID.String())
	handleSuccess(ctx, http.StatusCreated, "Order created", dto.ToOrderDTO(order))
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	id, ok := oh.parseUUID(ctx, ctx.Param("uuid"))
	if !ok {
		return
	}

	order, err := oh.service.GetOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	handleSuccess(ctx, http.StatusOK, "Order found", dto.ToOrderDTO(order))
}

// UpdateOrderTotal handles PUT /orders?uuidOrderDetail=&uuidOrder=.
func (oh *OrderHandler) UpdateOrderTotal(ctx *gin.Context) {
	lineItemID, ok := oh.parseUUID(ctx, ctx.Query("uuidOrderDetail"))
	if !ok {
		return
	}
	orderID, ok := oh.parseUUID(ctx, ctx.Query("uuidOrder"))
	if !ok {
		return
	}

	order, err := oh.service.UpdateOrderTotal(ctx, lineItemID, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	handleSuccess(ctx, http.StatusCreated, "Order updated", dto.ToOrderDTO(order))
}

func (oh *OrderHandler) DeleteOrder(ctx *gin.Context) {
	id, ok := oh.parseUUID(ctx, ctx.Param("uuid"))
	if !ok {
		return
	}

	err := oh.service.DeleteOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	handleSuccess(ctx, http.StatusNoContent, "", nil)
}

package http

import (
	"net/http"

	"github.com/gad/ecommerce-msvc/internal/adapter/dto"
	"github.com/gad/ecommerce-msvc/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LineItemHandler struct {
	Handler
	service port.LineItemService
}

func NewLineItemHandler(service port.LineItemService, logger *zap.Logger) (*LineItemHandler, error) {
	return &LineItemHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (lh *LineItemHandler) CreateLineItem(ctx *gin.Context) {
	req := dto.CreateLineItemRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		handleValidationError(ctx, err)
		return
	}

	// binding has already checked the uuid format
	orderID := uuid.MustParse(req.UUIDOrder)
	productID := uuid.MustParse(req.UUIDProduct)

	view, err := lh.service.CreateLineItem(ctx, orderID, productID, req.Amount)
	if err != nil {
		lh.handleError(ctx, err)
		return
	}

	ctx.Header("Location", "api/v1/order-details/"+view.ID.String())
	handleSuccess(ctx, http.StatusCreated, "Order detail created", dto.ToLineItemDTO(view))
}

func (lh *LineItemHandler) GetLineItem(ctx *gin.Context) {
	id, ok := lh.parseUUID(ctx, ctx.Param("uuid"))
	if !ok {
		return
	}

	view, err := lh.service.GetLineItem(ctx, id)
	if err != nil {
		lh.handleError(ctx, err)
		return
	}

	handleSuccess(ctx, http.StatusOK, "Order detail found", dto.ToLineItemDTO(view))
}

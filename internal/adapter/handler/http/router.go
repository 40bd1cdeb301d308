package http

import (
	"github.com/gad/ecommerce-msvc/internal/adapter/config"
	"github.com/gad/ecommerce-msvc/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func newEngine(conf *config.App, logger *zap.Logger) *gin.Engine {
	if conf.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	return router
}

// NewOrdersRouter serves the orders API.
func NewOrdersRouter(
	conf *config.App,
	logger *zap.Logger,
	tokenService port.TokenService,
	orderHandler *OrderHandler) (*Router, error) {
	router := newEngine(conf, logger)

	api := router.Group("/api/v1")
	{
		orders := api.Group("/orders")
		{
			orders.POST("", authCheck(tokenService), orderHandler.CreateOrder)
			orders.GET("/:uuid", orderHandler.GetOrder)
			orders.PUT("", orderHandler.UpdateOrderTotal)
			orders.DELETE("/:uuid", orderHandler.DeleteOrder)
		}
	}

	return &Router{router}, nil
}

// NewOrderDetailsRouter serves the order details API.
func NewOrderDetailsRouter(
	conf *config.App,
	logger *zap.Logger,
	lineItemHandler *LineItemHandler) (*Router, error) {
	router := newEngine(conf, logger)

	api := router.Group("/api/v1")
	{
		details := api.Group("/order-details")
		{
			details.POST("", lineItemHandler.CreateLineItem)
			details.GET("/:uuid", lineItemHandler.GetLineItem)
		}
	}

	return &Router{router}, nil
}

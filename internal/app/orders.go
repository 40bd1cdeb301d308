package app

import (
	"context"
	"fmt"

	"github.com/gad/ecommerce-msvc/internal/adapter/auth"
	"github.com/gad/ecommerce-msvc/internal/adapter/client/remote"
	"github.com/gad/ecommerce-msvc/internal/adapter/config"
	"github.com/gad/ecommerce-msvc/internal/adapter/handler/http"
	"github.com/gad/ecommerce-msvc/internal/adapter/storage/repository"
	"github.com/gad/ecommerce-msvc/internal/core/service"
	"go.uber.org/zap"
)

// RunOrders serves the orders API until ctx is canceled.
func RunOrders(ctx context.Context, conf *config.Config, log *zap.Logger) error {
	db, err := openDatabase(ctx, conf.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	c, err := newCache(ctx, conf.Cache, "orders")
	if err != nil {
		return fmt.Errorf("cache error: %w", err)
	}
	defer func() { _ = c.Close() }()

	repo, err := repository.NewOrderRepository(db)
	if err != nil {
		return fmt.Errorf("order repo creating error: %w", err)
	}

	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		return fmt.Errorf("token service creating error: %w", err)
	}

	lineItems := remote.NewLineItemClient(&conf.Remotes.OrderDetails, c, log.Named("Order details client"))

	svc, err := service.NewOrderService(repo, lineItems, c, log.Named("Order service"))
	if err != nil {
		return fmt.Errorf("order service creating error: %w", err)
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		return fmt.Errorf("order handler creating error: %w", err)
	}

	r, err := http.NewOrdersRouter(conf.App, log.Named("Router"), tokenService, orderHandler)
	if err != nil {
		return fmt.Errorf("router creating error: %w", err)
	}

	return serve(ctx, conf.HTTP, r, log)
}

package app

import (
	"context"
	"fmt"

	"github.com/gad/ecommerce-msvc/internal/adapter/client/remote"
	"github.com/gad/ecommerce-msvc/internal/adapter/config"
	"github.com/gad/ecommerce-msvc/internal/adapter/handler/http"
	"github.com/gad/ecommerce-msvc/internal/adapter/storage/repository"
	"github.com/gad/ecommerce-msvc/internal/core/service"
	"go.uber.org/zap"
)

// RunOrderDetails serves the order details API until ctx is canceled.
func RunOrderDetails(ctx context.Context, conf *config.Config, log *zap.Logger) error {
	db, err := openDatabase(ctx, conf.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	c, err := newCache(ctx, conf.Cache, "details")
	if err != nil {
		return fmt.Errorf("cache error: %w", err)
	}
	defer func() { _ = c.Close() }()

	repo, err := repository.NewLineItemRepository(db)
	if err != nil {
		return fmt.Errorf("line item repo creating error: %w", err)
	}

	orders := remote.NewOrderClient(&conf.Remotes.Orders, c, log.Named("Orders client"))
	products := remote.NewProductClient(&conf.Remotes.Products, c, log.Named("Products client"))

	svc, err := service.NewLineItemService(repo, orders, products, c, log.Named("Line item service"))
	if err != nil {
		return fmt.Errorf("line item service creating error: %w", err)
	}

	lineItemHandler, err := http.NewLineItemHandler(svc, log.Named("Line item handler"))
	if err != nil {
		return fmt.Errorf("line item handler creating error: %w", err)
	}

	r, err := http.NewOrderDetailsRouter(conf.App, log.Named("Router"), lineItemHandler)
	if err != nil {
		return fmt.Errorf("router creating error: %w", err)
	}

	return serve(ctx, conf.HTTP, r, log)
}

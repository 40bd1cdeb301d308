// Package app assembles and runs the orders and order details services.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gad/ecommerce-msvc/internal/adapter/cache"
	"github.com/gad/ecommerce-msvc/internal/adapter/config"
	"github.com/gad/ecommerce-msvc/internal/adapter/storage"
	"github.com/gad/ecommerce-msvc/internal/core/port"
	"go.uber.org/zap"
)

type closableCache interface {
	port.Cache
	Close() error
}

func newCache(ctx context.Context, conf *config.Cache, serviceName string) (closableCache, error) {
	switch conf.Driver {
	case config.CacheDriverRedis:
		return cache.NewRedisCache(ctx, conf.RedisAddr, serviceName, conf.TTL)
	case config.CacheDriverMemory:
		return cache.NewMemoryCache(conf.Size, serviceName)
	default:
		return nil, fmt.Errorf("unknown cache driver %q", conf.Driver)
	}
}

func openDatabase(ctx context.Context, conf *config.Database) (*storage.DB, error) {
	db, err := storage.NewDBStorage(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	err = db.RunMigrations()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("database migration error: %w", err)
	}
	return db, nil
}

// serve runs the server until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, conf *config.HTTP, handler http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              conf.HostString,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server started", zap.String("address", conf.HostString))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("router serve error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}

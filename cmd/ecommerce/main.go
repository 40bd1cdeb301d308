package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gad/ecommerce-msvc/internal/adapter/config"
	"github.com/gad/ecommerce-msvc/internal/adapter/logger"
	"github.com/gad/ecommerce-msvc/internal/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Version = "dev"

type runFunc func(ctx context.Context, conf *config.Config, log *zap.Logger) error

func main() {
	rootCmd := &cobra.Command{
		Use:     "ecommerce",
		Short:   "Order and order detail services",
		Version: Version,
	}

	rootCmd.AddCommand(serviceCmd("orders", "Run the orders service", ":8082", app.RunOrders))
	rootCmd.AddCommand(serviceCmd("order-details", "Run the order details service", ":8083", app.RunOrderDetails))
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serviceCmd(name, short, defaultAddr string, run runFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
	}
	conf := config.NewConfig(cmd.Flags(), defaultAddr)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		err := conf.Load()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		log, err := logger.NewLogger(conf.App, name)
		if err != nil {
			return fmt.Errorf("error creating log: %w", err)
		}
		defer func() { _ = log.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = run(ctx, conf, log)
		if err != nil {
			log.Error("service stopped", zap.Error(err))
			return err
		}
		return nil
	}

	return cmd
}

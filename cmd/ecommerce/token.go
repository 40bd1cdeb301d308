package main

import (
	"fmt"

	"github.com/gad/ecommerce-msvc/internal/adapter/auth"
	"github.com/gad/ecommerce-msvc/internal/adapter/config"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// tokenCmd issues development tokens accepted by the orders service.
func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token [customer-uuid]",
		Short: "Issue a bearer token for a customer",
		Args:  cobra.ExactArgs(1),
	}
	conf := config.NewConfig(cmd.Flags(), "")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		customerID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid customer uuid: %w", err)
		}
		if err := conf.Load(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		tokenService, err := auth.New(conf.Auth)
		if err != nil {
			return err
		}
		token, err := tokenService.CreateToken(customerID)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "keygen",
		Short: "Generate a token key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			publicHex, secretHex := auth.GenerateKeys()
			fmt.Fprintf(cmd.OutOrStdout(), "AUTH_PUBLIC_KEY=%s\nAUTH_SECRET_KEY=%s\n", publicHex, secretHex)
			return nil
		},
	})

	return cmd
}

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/xavierca1/produtora-site/internal/infra/database"
	"github.com/xavierca1/produtora-site/internal/logger"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria as tabelas (idempotente)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := database.Migrate(context.Background(), a.db); err != nil {
				return err
			}
			logger.Log.Info().Msg("schema aplicado")
			return nil
		},
	}
}

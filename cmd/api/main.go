package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xavierca1/produtora-site/internal/config"
	"github.com/xavierca1/produtora-site/internal/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "produtora",
	Short:         "Backend do site da produtora: leads, portfólio e equipe",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		logger.Init(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd(), migrateCmd(), seedCmd(), workerCmd(), leadsCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

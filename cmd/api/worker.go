package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xavierca1/produtora-site/internal/infra/queue"
)

func workerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consome a fila de leads e envia as notificações",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := openApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.connectBroker(); err != nil {
				return err
			}
			if err := a.requireBroker(); err != nil {
				return err
			}

			n := a.notifier()
			if n == nil {
				return errors.New("NOTIFY_DRIVER=none: nada para o worker fazer")
			}
			return queue.NewWorker(a.rabbit.Ch, n, cfg.NotifyDriver).Start(ctx, queue.QueueName)
		},
	}
}

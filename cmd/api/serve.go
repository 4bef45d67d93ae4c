package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xavierca1/produtora-site/internal/config"
	"github.com/xavierca1/produtora-site/internal/infra/http/handlers"
	"github.com/xavierca1/produtora-site/internal/infra/integration/supabase"
	"github.com/xavierca1/produtora-site/internal/infra/queue"
	"github.com/xavierca1/produtora-site/internal/infra/worker"
	"github.com/xavierca1/produtora-site/internal/logger"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

func serveCmd() *cobra.Command {
	var withWorker bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Sobe a API HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(withWorker)
		},
	}
	cmd.Flags().BoolVar(&withWorker, "with-worker", false, "consome a fila de notificações no mesmo processo")
	return cmd
}

func runServe(withWorker bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Component("api")

	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.connectBroker(); err != nil {
		return err
	}

	// 1. UseCases
	adminUC := usecase.NewLeadAdminUseCase(a.leads, cfg.LeadsCacheTTL)

	hooks := a.postCommitHooks()
	submitUC := usecase.NewSubmitLeadUseCase(a.leads, hooks, cfg.WhatsAppNumber, cfg.RedirectDelay)
	submitUC.OnCreated = leadCreated(adminUC)
	authUC := a.authUseCase()
	contentUC := usecase.NewContentUseCase(
		a.portfolio,
		a.team,
		supabase.NewMediaBucket(cfg.StorageURL(), cfg.SupabaseServiceKey, cfg.StorageBucket),
	)

	// 2. Workers
	go worker.NewLeadStatsWorker(a.leads, cfg.StatsInterval).Start(ctx)

	if withWorker {
		if err := a.requireBroker(); err != nil {
			return err
		}
		n := a.notifier()
		if n == nil {
			return errors.New("--with-worker exige NOTIFY_DRIVER diferente de none")
		}
		go func() {
			if err := queue.NewWorker(a.rabbit.Ch, n, cfg.NotifyDriver).Start(ctx, queue.QueueName); err != nil {
				log.Error().Err(err).Msg("worker de notificações parou")
			}
		}()
	}

	// 3. Handlers
	limiter := handlers.NewRateLimiter(cfg.IntakeRateLimit, time.Minute)
	defer limiter.Stop()

	health := handlers.NewHealthHandler(a.db, nil, map[string]bool{
		"supabase":      cfg.SupabaseURL != "",
		"storage":       cfg.SupabaseServiceKey != "",
		"notifications": cfg.NotifyDriver != config.NotifyNone,
		"kommo":         cfg.CRMEnabled(),
	})
	if a.rabbit != nil {
		health.RabbitMQ = a.rabbit.Conn
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		Log:         logger.Component("http"),
		CORSOrigins: cfg.CORSOrigins,
		Sessions:    authUC,
		Leads:       handlers.NewLeadHandler(submitUC, limiter),
		Admin:       handlers.NewAdminLeadHandler(adminUC),
		Content:     handlers.NewContentHandler(contentUC),
		Auth:        handlers.NewAuthHandler(authUC),
		Health:      health,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("lead_store", cfg.LeadStore).Msg("🔥 servidor no ar")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	// Notificações em andamento terminam antes de fechar o banco/broker.
	hooks.Wait()
	return nil
}

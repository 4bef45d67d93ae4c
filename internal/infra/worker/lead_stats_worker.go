package worker

import (
	"context"
	"time"

	"github.com/xavierca1/produtora-site/internal/entity"
	"github.com/xavierca1/produtora-site/internal/infra/http/middleware"
	"github.com/xavierca1/produtora-site/internal/logger"
)

// LeadStatsWorker atualiza periodicamente o gauge leads_by_status, para que
// o funil apareça no Prometheus sem depender de alguém abrir o painel.
type LeadStatsWorker struct {
	repo         entity.LeadRepositoryInterface
	tickInterval time.Duration
	report       func(map[entity.LeadStatus]int)
}

func NewLeadStatsWorker(repo entity.LeadRepositoryInterface, interval time.Duration) *LeadStatsWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &LeadStatsWorker{
		repo:         repo,
		tickInterval: interval,
		report:       middleware.SetLeadsByStatus,
	}
}

func (w *LeadStatsWorker) Start(ctx context.Context) {
	log := logger.Component("lead-stats")
	log.Info().Dur("interval", w.tickInterval).Msg("worker de estatísticas iniciado")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("worker de estatísticas encerrado")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *LeadStatsWorker) refresh(ctx context.Context) {
	leads, err := w.repo.List(ctx)
	if err != nil {
		log := logger.Component("lead-stats")
		log.Error().Err(err).Msg("erro ao carregar leads")
		middleware.RecordIntegrationError("database")
		return
	}

	stats := entity.ComputeLeadStats(leads)
	w.report(stats.ByStatus)
}

package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/produtora-site/internal/config"
	"github.com/xavierca1/produtora-site/internal/entity"
	"github.com/xavierca1/produtora-site/internal/infra/database"
	"github.com/xavierca1/produtora-site/internal/infra/http/middleware"
	"github.com/xavierca1/produtora-site/internal/infra/integration/kommo"
	"github.com/xavierca1/produtora-site/internal/infra/integration/supabase"
	"github.com/xavierca1/produtora-site/internal/infra/mail"
	"github.com/xavierca1/produtora-site/internal/infra/queue"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

// app agrupa as dependências compartilhadas pelos subcomandos.
type app struct {
	cfg *config.Config
	db  *sql.DB

	leads     entity.LeadRepositoryInterface
	portfolio *database.PortfolioRepository
	team      *database.TeamRepository
	roles     *database.RoleRepository

	rabbit *queue.RabbitMQ
}

func openApp(cfg *config.Config) (*app, error) {
	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:       cfg,
		db:        db,
		portfolio: database.NewPortfolioRepository(db),
		team:      database.NewTeamRepository(db),
		roles:     database.NewRoleRepository(db),
	}

	switch cfg.LeadStore {
	case config.LeadStorePostgrest:
		a.leads = supabase.NewLeadStore(cfg.RestURL(), cfg.SupabaseServiceKey)
	default:
		a.leads = database.NewLeadRepository(db)
	}
	return a, nil
}

// connectBroker abre o RabbitMQ quando RABBITMQ_URL está definido.
func (a *app) connectBroker() error {
	if a.cfg.RabbitMQURL == "" {
		return nil
	}
	rabbit, err := queue.NewRabbitMQ(a.cfg.RabbitMQURL)
	if err != nil {
		return err
	}
	a.rabbit = rabbit
	return nil
}

func (a *app) Close() {
	if a.rabbit != nil {
		a.rabbit.Close()
	}
	a.db.Close()
}

// notifier devolve nil para NOTIFY_DRIVER=none.
func (a *app) notifier() usecase.LeadNotifier {
	switch a.cfg.NotifyDriver {
	case config.NotifySMTP:
		return mail.NewEmailSender(a.cfg.MailHost, a.cfg.MailPort, a.cfg.MailUser, a.cfg.MailPass, a.cfg.MailFrom, a.cfg.NotifyTo)
	case config.NotifyFunction:
		return supabase.NewFunctionNotifier(a.cfg.FunctionsURL(), a.cfg.SupabaseAnonKey, a.cfg.NotifyFunction)
	default:
		return nil
	}
}

func (a *app) authUseCase() *usecase.AuthUseCase {
	provider := supabase.NewAuthClient(a.cfg.AuthURL(), a.cfg.SupabaseAnonKey)

	// Com o segredo JWT o token é validado localmente, sem ida ao provedor.
	var verifier usecase.TokenVerifier = provider
	if a.cfg.SupabaseJWTSecret != "" {
		verifier = supabase.NewJWTVerifier(a.cfg.SupabaseJWTSecret)
	}
	return usecase.NewAuthUseCase(provider, verifier, a.roles)
}

// postCommitHooks: com broker, o formulário só publica; sem broker, o
// próprio processo notifica.
func (a *app) postCommitHooks() *usecase.PostCommitHooks {
	hooks := usecase.NewPostCommitHooks(a.cfg.HookTimeout)

	if a.cfg.CRMEnabled() {
		crm := kommo.NewClient(a.cfg.KommoURL, a.cfg.KommoToken, a.cfg.KommoStatusID)
		hooks.Add("crm:kommo", recorded("kommo", usecase.NotifyHook(crm)))
	}

	if a.rabbit != nil {
		hooks.Add("publish", recorded("queue", usecase.PublishHook(queue.NewProducer(a.rabbit.Ch))))
		return hooks
	}

	if n := a.notifier(); n != nil {
		hooks.Add("notify:"+a.cfg.NotifyDriver, recorded(a.cfg.NotifyDriver, usecase.NotifyHook(n)))
	}
	return hooks
}

type leadHook = func(ctx context.Context, lead *entity.Lead, in usecase.SubmitLeadInput) error

// recorded conta cada tentativa em lead_notifications_total, inclusive a
// publicação na fila (driver "queue").
func recorded(driver string, hook leadHook) leadHook {
	return func(ctx context.Context, lead *entity.Lead, in usecase.SubmitLeadInput) error {
		err := hook(ctx, lead, in)
		middleware.RecordNotification(driver, err)
		return err
	}
}

// leadCreated roda após cada insert do formulário: conta o lead e derruba a
// listagem em cache do painel, senão o lead novo só aparece quando o TTL vence.
func leadCreated(admin *usecase.LeadAdminUseCase) func() {
	return func() {
		middleware.RecordLeadCreated()
		admin.Invalidate()
	}
}

func (a *app) requireBroker() error {
	if a.rabbit == nil {
		return fmt.Errorf("RABBITMQ_URL é obrigatório para este comando")
	}
	return nil
}

package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/produtora-site/internal/entity"
	"github.com/xavierca1/produtora-site/internal/infra/integration/whatsapp"
	"github.com/xavierca1/produtora-site/internal/logger"
)

type SubmitLeadUseCase struct {
	Repo           entity.LeadRepositoryInterface
	Hooks          *PostCommitHooks
	WhatsAppNumber string
	RedirectDelay  time.Duration
	OnCreated      func()
}

func NewSubmitLeadUseCase(
	repo entity.LeadRepositoryInterface,
	hooks *PostCommitHooks,
	whatsappNumber string,
	redirectDelay time.Duration,
) *SubmitLeadUseCase {
	if hooks == nil {
		hooks = NewPostCommitHooks(0)
	}
	return &SubmitLeadUseCase{
		Repo:           repo,
		Hooks:          hooks,
		WhatsAppNumber: whatsappNumber,
		RedirectDelay:  redirectDelay,
	}
}

func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	input = NormalizeSubmitLeadInput(input)

	if ve := ValidateSubmitLeadInput(input); ve != nil {
		return nil, validationFailed(*ve)
	}

	lead := entity.NewLead(
		input.Name,
		input.Email,
		input.WhatsApp,
		input.ProjectType,
		input.Objective,
		entity.ComposeLeadMessage(input.Company, input.Deadline),
	)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		logger.Log.Error().Err(err).Str("email", lead.Email).Msg("falha ao salvar lead")
		return nil, &TechnicalError{
			Code:    CodeSubmissionFailed,
			Message: submissionFailedMessage,
			Err:     err,
		}
	}

	logger.Log.Info().Str("lead_id", lead.ID).Str("project_type", lead.ProjectType).Msg("lead recebido")
	if uc.OnCreated != nil {
		uc.OnCreated()
	}

	uc.Hooks.Run(ctx, lead, input)

	redirect := whatsapp.DeepLink(uc.WhatsAppNumber, whatsapp.Greeting(whatsapp.GreetingInput{
		Name:        input.Name,
		Company:     input.Company,
		ProjectType: input.ProjectType,
	}))

	return &SubmitLeadOutput{
		ID:              lead.ID,
		Status:          string(lead.Status),
		Msg:             "Mensagem enviada com sucesso! Retornaremos em até 24 horas úteis.",
		RedirectURL:     redirect,
		RedirectDelayMs: uc.RedirectDelay.Milliseconds(),
	}, nil
}

// NotificationFromLead builds the dispatcher payload; company and deadline
// come from the raw input since the record only keeps the folded message.
func NotificationFromLead(lead *entity.Lead, in SubmitLeadInput) LeadNotification {
	return LeadNotification{
		LeadID:      lead.ID,
		Name:        lead.Name,
		Email:       lead.Email,
		WhatsApp:    lead.WhatsApp,
		ProjectType: lead.ProjectType,
		Objective:   lead.Objective,
		Company:     in.Company,
		Deadline:    in.Deadline,
	}
}

// NotifyHook dispatches synchronously inside the hook goroutine.
func NotifyHook(n LeadNotifier) func(ctx context.Context, lead *entity.Lead, in SubmitLeadInput) error {
	return func(ctx context.Context, lead *entity.Lead, in SubmitLeadInput) error {
		return n.NotifyLeadCreated(ctx, NotificationFromLead(lead, in))
	}
}

// PublishHook hands the notification to the broker.
func PublishHook(p LeadEventPublisher) func(ctx context.Context, lead *entity.Lead, in SubmitLeadInput) error {
	return func(ctx context.Context, lead *entity.Lead, in SubmitLeadInput) error {
		return p.PublishLeadCreated(ctx, NotificationFromLead(lead, in))
	}
}

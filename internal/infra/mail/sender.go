package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/produtora-site/internal/infra/integration/whatsapp"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

//go:embed templates/*.html
var templatesFS embed.FS

var leadTemplate = template.Must(template.ParseFS(templatesFS, "templates/lead_notification.html"))

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

// NotifyLeadCreated envia o aviso de novo lead para a caixa da produtora.
func (s *EmailSender) NotifyLeadCreated(ctx context.Context, n usecase.LeadNotification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	m, err := s.BuildLeadMessage(n)
	if err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}

func (s *EmailSender) BuildLeadMessage(n usecase.LeadNotification) (*gomail.Message, error) {
	body, err := RenderLeadEmail(n)
	if err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Reply-To", n.Email)
	m.SetHeader("Subject", LeadSubject(n))
	m.SetBody("text/html", body)
	return m, nil
}

func LeadSubject(n usecase.LeadNotification) string {
	project := n.ProjectType
	if project == "" {
		project = "Orçamento"
	}
	return fmt.Sprintf("🎬 Novo Lead: %s - %s", n.Name, project)
}

func RenderLeadEmail(n usecase.LeadNotification) (string, error) {
	data := leadEmailData{
		Name:        n.Name,
		Email:       n.Email,
		WhatsApp:    n.WhatsApp,
		ChatURL:     whatsapp.DeepLink(n.WhatsApp, ""),
		ReplyURL:    whatsapp.DeepLink(n.WhatsApp, whatsapp.ReplyGreeting(n.Name)),
		Company:     n.Company,
		ProjectType: n.ProjectType,
		Deadline:    n.Deadline,
		Objective:   n.Objective,
	}

	var body bytes.Buffer
	if err := leadTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}
	return body.String(), nil
}

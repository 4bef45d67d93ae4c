package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/xavierca1/produtora-site/internal/usecase"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func lead() usecase.LeadNotification {
	return usecase.LeadNotification{
		Name:      "João",
		Email:     "joao@test.com",
		WhatsApp:  "(47) 99999-9999",
		Objective: "Quero um vídeo institucional",
	}
}

func TestLeadSubject(t *testing.T) {
	n := lead()
	assert.Equal(t, "🎬 Novo Lead: João - Orçamento", LeadSubject(n))

	n.ProjectType = "Institucional"
	assert.Equal(t, "🎬 Novo Lead: João - Institucional", LeadSubject(n))
}

func TestRenderLeadEmail(t *testing.T) {
	n := lead()
	n.Deadline = "30 dias"
	body, err := RenderLeadEmail(n)
	require.NoError(t, err)

	assert.Contains(t, body, "https://wa.me/47999999999")
	assert.Contains(t, body, "Ol%C3%A1%20Jo%C3%A3o")
	assert.Contains(t, body, "<strong>Prazo:</strong> 30 dias")
	assert.NotContains(t, body, "Empresa:")
	assert.NotContains(t, body, "Tipo de Projeto:")
}

func TestRenderLeadEmailEscapesInput(t *testing.T) {
	n := lead()
	n.Objective = `<script>alert("x")</script>`
	body, err := RenderLeadEmail(n)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestNotifyLeadCreated(t *testing.T) {
	d := &fakeDialer{}
	s := NewEmailSender("smtp.test", 587, "u", "p", "leads@produtora.com", "contato@produtora.com")
	s.dialer = d

	require.NoError(t, s.NotifyLeadCreated(context.Background(), lead()))
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"contato@produtora.com"}, d.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"joao@test.com"}, d.sent[0].GetHeader("Reply-To"))
}

func TestNotifyLeadCreatedErrors(t *testing.T) {
	d := &fakeDialer{err: errors.New("connection refused")}
	s := NewEmailSender("smtp.test", 587, "u", "p", "leads@produtora.com", "contato@produtora.com")
	s.dialer = d

	err := s.NotifyLeadCreated(context.Background(), usecase.LeadNotification{Name: "João"})
	assert.EqualError(t, err, "Missing required lead fields")
	assert.Empty(t, d.sent)

	err = s.NotifyLeadCreated(context.Background(), lead())
	assert.ErrorContains(t, err, "connection refused")
}

package usecase

import "github.com/xavierca1/produtora-site/internal/entity"

// SubmitLeadInput mirrors the public contact form. Field order is the order
// in which constraints are checked.
type SubmitLeadInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Company     string `json:"company" validate:"max=100"`
	WhatsApp    string `json:"whatsapp" validate:"required,max=20"`
	Email       string `json:"email" validate:"required,email,max=255"`
	ProjectType string `json:"project_type" validate:"max=100"`
	Deadline    string `json:"deadline" validate:"max=50"`
	Objective   string `json:"objective" validate:"required,max=1000"`
}

type SubmitLeadOutput struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	Msg             string `json:"msg"`
	RedirectURL     string `json:"redirect_url"`
	RedirectDelayMs int64  `json:"redirect_delay_ms"`
}

// LeadNotification is the payload the notification dispatcher receives.
type LeadNotification struct {
	LeadID      string `json:"leadId,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	WhatsApp    string `json:"whatsapp"`
	ProjectType string `json:"projectType,omitempty"`
	Objective   string `json:"objective"`
	Company     string `json:"company,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
}

// Validate enforces the dispatcher's minimum payload.
func (n LeadNotification) Validate() error {
	if n.Name == "" || n.Email == "" || n.WhatsApp == "" || n.Objective == "" {
		return &DomainError{Code: CodeValidation, Message: "Missing required lead fields"}
	}
	return nil
}

type LeadListQuery struct {
	Search string
	Status string
}

const (
	EmptyStateNone      = ""
	EmptyStateNoLeads   = "no_leads"
	EmptyStateNoMatches = "no_matches"
)

type LeadListView struct {
	Leads      []*entity.Lead   `json:"leads"`
	Total      int              `json:"total"`
	Stats      entity.LeadStats `json:"stats"`
	EmptyState string           `json:"empty_state"`
}

type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInOutput struct {
	AccessToken string          `json:"access_token"`
	Session     *entity.Session `json:"session"`
}

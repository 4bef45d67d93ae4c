package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound      = errors.New("lead não encontrado")
	ErrInvalidLeadStatus = errors.New("status de lead inválido")
)

type LeadStatus string

const (
	LeadStatusNovo         LeadStatus = "novo"
	LeadStatusContatado    LeadStatus = "contatado"
	LeadStatusEmNegociacao LeadStatus = "em_negociacao"
	LeadStatusConvertido   LeadStatus = "convertido"
	LeadStatusPerdido      LeadStatus = "perdido"
)

// StatusInfo is the fixed display metadata of a status.
type StatusInfo struct {
	Value LeadStatus `json:"value"`
	Label string     `json:"label"`
	Color string     `json:"color"`
}

// LeadStatuses is the closed set, in workflow order.
var LeadStatuses = []StatusInfo{
	{Value: LeadStatusNovo, Label: "Novo", Color: "blue"},
	{Value: LeadStatusContatado, Label: "Contatado", Color: "yellow"},
	{Value: LeadStatusEmNegociacao, Label: "Em Negociação", Color: "purple"},
	{Value: LeadStatusConvertido, Label: "Convertido", Color: "green"},
	{Value: LeadStatusPerdido, Label: "Perdido", Color: "red"},
}

func (s LeadStatus) Valid() bool {
	for _, info := range LeadStatuses {
		if info.Value == s {
			return true
		}
	}
	return false
}

// Info never fails: statuses outside the closed set get their raw value as label.
func (s LeadStatus) Info() StatusInfo {
	for _, info := range LeadStatuses {
		if info.Value == s {
			return info
		}
	}
	return StatusInfo{Value: s, Label: string(s), Color: "muted"}
}

func (s LeadStatus) Label() string {
	return s.Info().Label
}

type Lead struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	WhatsApp    string     `json:"whatsapp"`
	ProjectType string     `json:"project_type"`
	Objective   string     `json:"objective"`
	Message     string     `json:"message"`
	Status      LeadStatus `json:"status"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewLead builds a fresh intake record: status novo, no notes.
func NewLead(name, email, whatsapp, projectType, objective, message string) *Lead {
	now := time.Now()
	return &Lead{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       email,
		WhatsApp:    whatsapp,
		ProjectType: projectType,
		Objective:   objective,
		Message:     message,
		Status:      LeadStatusNovo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// StatusLabel is what the admin list renders for the record.
func (l *Lead) StatusLabel() string {
	return l.Status.Label()
}

// ComposeLeadMessage folds the optional company and deadline into the
// free-text message column ("Empresa: X | Prazo: Y").
func ComposeLeadMessage(company, deadline string) string {
	var parts []string
	if c := strings.TrimSpace(company); c != "" {
		parts = append(parts, "Empresa: "+c)
	}
	if d := strings.TrimSpace(deadline); d != "" {
		parts = append(parts, "Prazo: "+d)
	}
	return strings.Join(parts, " | ")
}

type LeadStats struct {
	Total    int                `json:"total"`
	ByStatus map[LeadStatus]int `json:"by_status"`
}

// ComputeLeadStats derives the dashboard counters from an already loaded list.
// Every known status is present in ByStatus, even with zero.
func ComputeLeadStats(leads []*Lead) LeadStats {
	stats := LeadStats{
		Total:    len(leads),
		ByStatus: make(map[LeadStatus]int, len(LeadStatuses)),
	}
	for _, info := range LeadStatuses {
		stats.ByStatus[info.Value] = 0
	}
	for _, l := range leads {
		if l.Status.Valid() {
			stats.ByStatus[l.Status]++
		}
	}
	return stats
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	List(ctx context.Context) ([]*Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	UpdateStatus(ctx context.Context, id string, status LeadStatus) (*Lead, error)
	UpdateNotes(ctx context.Context, id string, notes string) (*Lead, error)
	Delete(ctx context.Context, id string) error
}

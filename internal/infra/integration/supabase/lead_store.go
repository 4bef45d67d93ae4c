package supabase

import (
	"context"
	"strings"
	"time"

	"github.com/supabase-community/postgrest-go"

	"github.com/xavierca1/produtora-site/internal/entity"
)

const leadsTable = "leads"

// LeadStore keeps leads through the hosted REST API instead of a direct
// Postgres connection. It satisfies entity.LeadRepositoryInterface.
type LeadStore struct {
	client *postgrest.Client
}

func NewLeadStore(restURL, serviceKey string) *LeadStore {
	return &LeadStore{client: postgrest.NewClient(restURL, "public", serviceHeaders(serviceKey))}
}

func (s *LeadStore) Create(ctx context.Context, lead *entity.Lead) error {
	row := toRow(lead)
	var out []leadRow
	_, err := s.client.From(leadsTable).
		Insert(row, false, "", "representation", "").
		ExecuteTo(&out)
	return translate(err)
}

func (s *LeadStore) List(ctx context.Context) ([]*entity.Lead, error) {
	var rows []leadRow
	_, err := s.client.From(leadsTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Order("id", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, translate(err)
	}

	leads := make([]*entity.Lead, 0, len(rows))
	for _, r := range rows {
		leads = append(leads, fromRow(r))
	}
	return leads, nil
}

func (s *LeadStore) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	var rows []leadRow
	_, err := s.client.From(leadsTable).
		Select("*", "", false).
		Eq("id", id).
		ExecuteTo(&rows)
	if err != nil {
		return nil, translate(err)
	}
	if len(rows) == 0 {
		return nil, entity.ErrLeadNotFound
	}
	return fromRow(rows[0]), nil
}

func (s *LeadStore) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) (*entity.Lead, error) {
	return s.update(id, map[string]any{"status": string(status), "updated_at": time.Now().UTC()})
}

func (s *LeadStore) UpdateNotes(ctx context.Context, id string, notes string) (*entity.Lead, error) {
	return s.update(id, map[string]any{"notes": optional(notes), "updated_at": time.Now().UTC()})
}

func (s *LeadStore) update(id string, fields map[string]any) (*entity.Lead, error) {
	var rows []leadRow
	_, err := s.client.From(leadsTable).
		Update(fields, "representation", "").
		Eq("id", id).
		ExecuteTo(&rows)
	if err != nil {
		return nil, translate(err)
	}
	if len(rows) == 0 {
		return nil, entity.ErrLeadNotFound
	}
	return fromRow(rows[0]), nil
}

// Delete asks for the removed rows back; an empty answer means the id did
// not exist.
func (s *LeadStore) Delete(ctx context.Context, id string) error {
	var rows []leadRow
	_, err := s.client.From(leadsTable).
		Delete("representation", "").
		Eq("id", id).
		ExecuteTo(&rows)
	if err != nil {
		return translate(err)
	}
	if len(rows) == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func toRow(l *entity.Lead) leadRow {
	return leadRow{
		ID:          l.ID,
		Name:        l.Name,
		Email:       l.Email,
		WhatsApp:    optional(l.WhatsApp),
		ProjectType: optional(l.ProjectType),
		Objective:   optional(l.Objective),
		Message:     optional(l.Message),
		Status:      string(l.Status),
		Notes:       optional(l.Notes),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func fromRow(r leadRow) *entity.Lead {
	return &entity.Lead{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		WhatsApp:    deref(r.WhatsApp),
		ProjectType: deref(r.ProjectType),
		Objective:   deref(r.Objective),
		Message:     deref(r.Message),
		Status:      entity.LeadStatus(r.Status),
		Notes:       deref(r.Notes),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// translate maps the check constraint on leads.status to the domain error.
// An id that is not a uuid (22P02) can never match a row.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case strings.Contains(err.Error(), "23514"):
		return entity.ErrInvalidLeadStatus
	case strings.Contains(err.Error(), "22P02"):
		return entity.ErrLeadNotFound
	}
	return err
}

package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/xavierca1/produtora-site/internal/entity"
)

const leadColumns = `id, name, email, whatsapp, project_type, objective, message, status, notes, created_at, updated_at`

const (
	pgCheckViolation            = "23514"
	pgInvalidTextRepresentation = "22P02"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, whatsapp, project_type, objective, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		nullString(lead.WhatsApp),
		nullString(lead.ProjectType),
		nullString(lead.Objective),
		nullString(lead.Message),
		lead.Status,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	return translateLeadError(err)
}

func (r *LeadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	lead, err := scanLead(row)
	if err != nil {
		return nil, translateLeadError(err)
	}
	return lead, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) (*entity.Lead, error) {
	query := `UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + leadColumns
	return r.updateReturning(ctx, query, string(status), id)
}

// UpdateNotes grava string vazia como NULL.
func (r *LeadRepository) UpdateNotes(ctx context.Context, id string, notes string) (*entity.Lead, error) {
	query := `UPDATE leads SET notes = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + leadColumns
	return r.updateReturning(ctx, query, nullString(notes), id)
}

func (r *LeadRepository) updateReturning(ctx context.Context, query string, value any, id string) (*entity.Lead, error) {
	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, value, id))
	if err != nil {
		return nil, translateLeadError(err)
	}
	return lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return translateLeadError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		lead                                                   entity.Lead
		whatsapp, projectType, objective, message, notes, stat sql.NullString
	)
	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&whatsapp,
		&projectType,
		&objective,
		&message,
		&stat,
		&notes,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	lead.WhatsApp = whatsapp.String
	lead.ProjectType = projectType.String
	lead.Objective = objective.String
	lead.Message = message.String
	lead.Status = entity.LeadStatus(stat.String)
	lead.Notes = notes.String
	return &lead, nil
}

func translateLeadError(err error) error {
	if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
		return entity.ErrLeadNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgCheckViolation {
		return entity.ErrInvalidLeadStatus
	}
	return err
}

// isMalformedID: id que não é uuid falha no cast do Postgres; nenhuma linha
// pode ter esse id, então quem chama trata como não encontrado.
func isMalformedID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgInvalidTextRepresentation
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

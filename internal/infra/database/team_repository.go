package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/produtora-site/internal/entity"
)

const teamColumns = `id, name, role, bio, image_url, instagram, linkedin, display_order, is_active, created_at, updated_at`

type TeamRepository struct {
	DB *sql.DB
}

func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) Create(ctx context.Context, m *entity.TeamMember) error {
	query := `
		INSERT INTO team_members (id, name, role, bio, image_url, instagram, linkedin, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.Name, m.Role,
		nullString(m.Bio), nullString(m.ImageURL), nullString(m.Instagram), nullString(m.LinkedIn),
		m.DisplayOrder, m.IsActive, m.CreatedAt, m.UpdatedAt,
	)
	return err
}

func (r *TeamRepository) List(ctx context.Context, onlyActive bool) ([]*entity.TeamMember, error) {
	query := `SELECT ` + teamColumns + ` FROM team_members`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	rows, err := r.DB.QueryContext(ctx, query+contentOrder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*entity.TeamMember{}
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (*entity.TeamMember, error) {
	m, err := scanTeamMember(r.DB.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM team_members WHERE id = $1`, id))
	if err != nil {
		return nil, translateContentError(err)
	}
	return m, nil
}

func (r *TeamRepository) Update(ctx context.Context, m *entity.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $1, role = $2, bio = $3, image_url = $4, instagram = $5, linkedin = $6,
		    display_order = $7, is_active = $8, updated_at = $9
		WHERE id = $10
	`
	res, err := r.DB.ExecContext(ctx, query,
		m.Name, m.Role,
		nullString(m.Bio), nullString(m.ImageURL), nullString(m.Instagram), nullString(m.LinkedIn),
		m.DisplayOrder, m.IsActive, m.UpdatedAt, m.ID,
	)
	return expectOneRow(res, err)
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	return expectOneRow(res, err)
}

func scanTeamMember(row rowScanner) (*entity.TeamMember, error) {
	var (
		m                                   entity.TeamMember
		bio, imageURL, instagram, linkedIn sql.NullString
	)
	err := row.Scan(&m.ID, &m.Name, &m.Role, &bio, &imageURL, &instagram, &linkedIn, &m.DisplayOrder, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Bio = bio.String
	m.ImageURL = imageURL.String
	m.Instagram = instagram.String
	m.LinkedIn = linkedIn.String
	return &m, nil
}

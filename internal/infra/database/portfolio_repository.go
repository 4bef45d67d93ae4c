package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/produtora-site/internal/entity"
)

const (
	videoColumns = `id, title, category, thumbnail_url, video_url, display_order, is_active, created_at, updated_at`
	photoColumns = `id, title, image_url, display_order, is_active, created_at, updated_at`

	contentOrder = ` ORDER BY display_order ASC, created_at ASC, id ASC`
)

type PortfolioRepository struct {
	DB *sql.DB
}

func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{DB: db}
}

func (r *PortfolioRepository) CreateVideo(ctx context.Context, v *entity.PortfolioVideo) error {
	query := `
		INSERT INTO portfolio_videos (id, title, category, thumbnail_url, video_url, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		v.ID, v.Title, v.Category, v.ThumbnailURL, v.VideoURL, v.DisplayOrder, v.IsActive, v.CreatedAt, v.UpdatedAt,
	)
	return err
}

func (r *PortfolioRepository) ListVideos(ctx context.Context, onlyActive bool) ([]*entity.PortfolioVideo, error) {
	query := `SELECT ` + videoColumns + ` FROM portfolio_videos`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	rows, err := r.DB.QueryContext(ctx, query+contentOrder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []*entity.PortfolioVideo{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (r *PortfolioRepository) FindVideoByID(ctx context.Context, id string) (*entity.PortfolioVideo, error) {
	v, err := scanVideo(r.DB.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM portfolio_videos WHERE id = $1`, id))
	if err != nil {
		return nil, translateContentError(err)
	}
	return v, nil
}

func (r *PortfolioRepository) UpdateVideo(ctx context.Context, v *entity.PortfolioVideo) error {
	query := `
		UPDATE portfolio_videos
		SET title = $1, category = $2, thumbnail_url = $3, video_url = $4,
		    display_order = $5, is_active = $6, updated_at = $7
		WHERE id = $8
	`
	res, err := r.DB.ExecContext(ctx, query,
		v.Title, v.Category, v.ThumbnailURL, v.VideoURL, v.DisplayOrder, v.IsActive, v.UpdatedAt, v.ID,
	)
	return expectOneRow(res, err)
}

func (r *PortfolioRepository) DeleteVideo(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM portfolio_videos WHERE id = $1`, id)
	return expectOneRow(res, err)
}

func (r *PortfolioRepository) CreatePhoto(ctx context.Context, p *entity.PortfolioPhoto) error {
	query := `
		INSERT INTO portfolio_photos (id, title, image_url, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, nullString(p.Title), p.ImageURL, p.DisplayOrder, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *PortfolioRepository) ListPhotos(ctx context.Context, onlyActive bool) ([]*entity.PortfolioPhoto, error) {
	query := `SELECT ` + photoColumns + ` FROM portfolio_photos`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	rows, err := r.DB.QueryContext(ctx, query+contentOrder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := []*entity.PortfolioPhoto{}
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *PortfolioRepository) FindPhotoByID(ctx context.Context, id string) (*entity.PortfolioPhoto, error) {
	p, err := scanPhoto(r.DB.QueryRowContext(ctx, `SELECT `+photoColumns+` FROM portfolio_photos WHERE id = $1`, id))
	if err != nil {
		return nil, translateContentError(err)
	}
	return p, nil
}

func (r *PortfolioRepository) UpdatePhoto(ctx context.Context, p *entity.PortfolioPhoto) error {
	query := `
		UPDATE portfolio_photos
		SET title = $1, image_url = $2, display_order = $3, is_active = $4, updated_at = $5
		WHERE id = $6
	`
	res, err := r.DB.ExecContext(ctx, query,
		nullString(p.Title), p.ImageURL, p.DisplayOrder, p.IsActive, p.UpdatedAt, p.ID,
	)
	return expectOneRow(res, err)
}

func (r *PortfolioRepository) DeletePhoto(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM portfolio_photos WHERE id = $1`, id)
	return expectOneRow(res, err)
}

func scanVideo(row rowScanner) (*entity.PortfolioVideo, error) {
	var v entity.PortfolioVideo
	err := row.Scan(&v.ID, &v.Title, &v.Category, &v.ThumbnailURL, &v.VideoURL, &v.DisplayOrder, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanPhoto(row rowScanner) (*entity.PortfolioPhoto, error) {
	var (
		p     entity.PortfolioPhoto
		title sql.NullString
	)
	err := row.Scan(&p.ID, &title, &p.ImageURL, &p.DisplayOrder, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Title = title.String
	return &p, nil
}

// expectOneRow turns a mutation that touched nothing into ErrContentNotFound.
func expectOneRow(res sql.Result, err error) error {
	if err != nil {
		return translateContentError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrContentNotFound
	}
	return nil
}

func translateContentError(err error) error {
	if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
		return entity.ErrContentNotFound
	}
	return err
}

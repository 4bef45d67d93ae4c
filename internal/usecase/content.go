package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/produtora-site/internal/entity"
	"github.com/xavierca1/produtora-site/internal/logger"
)

type VideoInput struct {
	Title        string `json:"title" yaml:"title"`
	Category     string `json:"category" yaml:"category"`
	ThumbnailURL string `json:"thumbnail_url" yaml:"thumbnail_url"`
	VideoURL     string `json:"video_url" yaml:"video_url"`
	DisplayOrder int    `json:"display_order" yaml:"display_order"`
	IsActive     *bool  `json:"is_active" yaml:"is_active"`
}

type PhotoInput struct {
	Title        string `json:"title" yaml:"title"`
	ImageURL     string `json:"image_url" yaml:"image_url"`
	DisplayOrder int    `json:"display_order" yaml:"display_order"`
	IsActive     *bool  `json:"is_active" yaml:"is_active"`
}

type TeamMemberInput struct {
	Name         string `json:"name" yaml:"name"`
	Role         string `json:"role" yaml:"role"`
	Bio          string `json:"bio" yaml:"bio"`
	ImageURL     string `json:"image_url" yaml:"image_url"`
	Instagram    string `json:"instagram" yaml:"instagram"`
	LinkedIn     string `json:"linkedin" yaml:"linkedin"`
	DisplayOrder int    `json:"display_order" yaml:"display_order"`
	IsActive     *bool  `json:"is_active" yaml:"is_active"`
}

// Upload folders inside the media bucket.
const (
	MediaPhotos     = "photos"
	MediaThumbnails = "thumbnails"
	MediaTeam       = "team"
)

func activeOrDefault(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}

func firstValidationError(v any) error {
	if errs := ValidateStruct(v); len(errs) > 0 {
		return validationFailed(errs[0])
	}
	return nil
}

// ContentUseCase manages portfolio media and team members, the secondary
// entities shown on the public site.
type ContentUseCase struct {
	Portfolio entity.PortfolioRepositoryInterface
	Team      entity.TeamRepositoryInterface
	Storage   MediaStorage
}

func NewContentUseCase(portfolio entity.PortfolioRepositoryInterface, team entity.TeamRepositoryInterface, storage MediaStorage) *ContentUseCase {
	return &ContentUseCase{Portfolio: portfolio, Team: team, Storage: storage}
}

func (uc *ContentUseCase) PublicVideos(ctx context.Context) ([]*entity.PortfolioVideo, error) {
	videos, err := uc.Portfolio.ListVideos(ctx, true)
	if err != nil {
		return nil, databaseError(err)
	}
	return videos, nil
}

func (uc *ContentUseCase) PublicPhotos(ctx context.Context) ([]*entity.PortfolioPhoto, error) {
	photos, err := uc.Portfolio.ListPhotos(ctx, true)
	if err != nil {
		return nil, databaseError(err)
	}
	return photos, nil
}

func (uc *ContentUseCase) PublicTeam(ctx context.Context) ([]*entity.TeamMember, error) {
	members, err := uc.Team.List(ctx, true)
	if err != nil {
		return nil, databaseError(err)
	}
	return members, nil
}

func (uc *ContentUseCase) ListVideos(ctx context.Context, sess *entity.Session) ([]*entity.PortfolioVideo, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	videos, err := uc.Portfolio.ListVideos(ctx, false)
	if err != nil {
		return nil, databaseError(err)
	}
	return videos, nil
}

func (uc *ContentUseCase) AddVideo(ctx context.Context, sess *entity.Session, in VideoInput) (*entity.PortfolioVideo, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	v := entity.NewPortfolioVideo(
		strings.TrimSpace(in.Title), strings.TrimSpace(in.Category),
		strings.TrimSpace(in.ThumbnailURL), strings.TrimSpace(in.VideoURL),
		in.DisplayOrder, activeOrDefault(in.IsActive),
	)
	if err := firstValidationError(v); err != nil {
		return nil, err
	}
	if err := uc.Portfolio.CreateVideo(ctx, v); err != nil {
		return nil, databaseError(err)
	}
	return v, nil
}

func (uc *ContentUseCase) UpdateVideo(ctx context.Context, sess *entity.Session, id string, in VideoInput) (*entity.PortfolioVideo, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	v, err := uc.Portfolio.FindVideoByID(ctx, id)
	if err != nil {
		return nil, contentError(err)
	}
	v.Title = strings.TrimSpace(in.Title)
	v.Category = strings.TrimSpace(in.Category)
	v.ThumbnailURL = strings.TrimSpace(in.ThumbnailURL)
	v.VideoURL = strings.TrimSpace(in.VideoURL)
	v.DisplayOrder = in.DisplayOrder
	if in.IsActive != nil {
		v.IsActive = *in.IsActive
	}
	v.UpdatedAt = time.Now()

	if err := firstValidationError(v); err != nil {
		return nil, err
	}
	if err := uc.Portfolio.UpdateVideo(ctx, v); err != nil {
		return nil, contentError(err)
	}
	return v, nil
}

func (uc *ContentUseCase) DeleteVideo(ctx context.Context, sess *entity.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if err := uc.Portfolio.DeleteVideo(ctx, id); err != nil {
		return contentError(err)
	}
	return nil
}

func (uc *ContentUseCase) ListPhotos(ctx context.Context, sess *entity.Session) ([]*entity.PortfolioPhoto, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	photos, err := uc.Portfolio.ListPhotos(ctx, false)
	if err != nil {
		return nil, databaseError(err)
	}
	return photos, nil
}

func (uc *ContentUseCase) AddPhoto(ctx context.Context, sess *entity.Session, in PhotoInput) (*entity.PortfolioPhoto, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	p := entity.NewPortfolioPhoto(strings.TrimSpace(in.Title), strings.TrimSpace(in.ImageURL), in.DisplayOrder, activeOrDefault(in.IsActive))
	if err := firstValidationError(p); err != nil {
		return nil, err
	}
	if err := uc.Portfolio.CreatePhoto(ctx, p); err != nil {
		return nil, databaseError(err)
	}
	return p, nil
}

func (uc *ContentUseCase) UpdatePhoto(ctx context.Context, sess *entity.Session, id string, in PhotoInput) (*entity.PortfolioPhoto, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	p, err := uc.Portfolio.FindPhotoByID(ctx, id)
	if err != nil {
		return nil, contentError(err)
	}
	p.Title = strings.TrimSpace(in.Title)
	p.ImageURL = strings.TrimSpace(in.ImageURL)
	p.DisplayOrder = in.DisplayOrder
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.UpdatedAt = time.Now()

	if err := firstValidationError(p); err != nil {
		return nil, err
	}
	if err := uc.Portfolio.UpdatePhoto(ctx, p); err != nil {
		return nil, contentError(err)
	}
	return p, nil
}

func (uc *ContentUseCase) DeletePhoto(ctx context.Context, sess *entity.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if err := uc.Portfolio.DeletePhoto(ctx, id); err != nil {
		return contentError(err)
	}
	return nil
}

func (uc *ContentUseCase) ListTeam(ctx context.Context, sess *entity.Session) ([]*entity.TeamMember, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	members, err := uc.Team.List(ctx, false)
	if err != nil {
		return nil, databaseError(err)
	}
	return members, nil
}

func (uc *ContentUseCase) AddTeamMember(ctx context.Context, sess *entity.Session, in TeamMemberInput) (*entity.TeamMember, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	m := entity.NewTeamMember(strings.TrimSpace(in.Name), strings.TrimSpace(in.Role), in.DisplayOrder, activeOrDefault(in.IsActive))
	applyTeamOptionals(m, in)
	if err := firstValidationError(m); err != nil {
		return nil, err
	}
	if err := uc.Team.Create(ctx, m); err != nil {
		return nil, databaseError(err)
	}
	return m, nil
}

func (uc *ContentUseCase) UpdateTeamMember(ctx context.Context, sess *entity.Session, id string, in TeamMemberInput) (*entity.TeamMember, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	m, err := uc.Team.FindByID(ctx, id)
	if err != nil {
		return nil, contentError(err)
	}
	m.Name = strings.TrimSpace(in.Name)
	m.Role = strings.TrimSpace(in.Role)
	m.DisplayOrder = in.DisplayOrder
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}
	applyTeamOptionals(m, in)
	m.UpdatedAt = time.Now()

	if err := firstValidationError(m); err != nil {
		return nil, err
	}
	if err := uc.Team.Update(ctx, m); err != nil {
		return nil, contentError(err)
	}
	return m, nil
}

func (uc *ContentUseCase) DeleteTeamMember(ctx context.Context, sess *entity.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if err := uc.Team.Delete(ctx, id); err != nil {
		return contentError(err)
	}
	return nil
}

func applyTeamOptionals(m *entity.TeamMember, in TeamMemberInput) {
	m.Bio = strings.TrimSpace(in.Bio)
	m.ImageURL = strings.TrimSpace(in.ImageURL)
	m.Instagram = strings.TrimSpace(in.Instagram)
	m.LinkedIn = strings.TrimSpace(in.LinkedIn)
}

// UploadMedia stores a file under <kind>/<unixmillis>-<random>.<ext> and
// returns its public URL. No type or size checks happen here.
func (uc *ContentUseCase) UploadMedia(ctx context.Context, sess *entity.Session, kind, filename, contentType string, data io.Reader) (string, error) {
	if err := requireAdmin(sess); err != nil {
		return "", err
	}
	switch kind {
	case MediaPhotos, MediaThumbnails, MediaTeam:
	default:
		return "", &DomainError{Code: CodeValidation, Field: "kind", Message: "Tipo de upload inválido: " + kind}
	}

	path := fmt.Sprintf("%s/%s", kind, MediaObjectName(filename, time.Now()))
	url, err := uc.Storage.Upload(ctx, path, contentType, data)
	if err != nil {
		logger.Log.Error().Err(err).Str("path", path).Msg("falha no upload de mídia")
		return "", &TechnicalError{Code: CodeStorage, Message: err.Error(), Err: err}
	}
	return url, nil
}

// MediaObjectName builds a collision-resistant object name keeping the
// original extension.
func MediaObjectName(filename string, now time.Time) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	random := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	name := fmt.Sprintf("%d-%s", now.UnixMilli(), random)
	if ext == "" {
		return name
	}
	return name + "." + ext
}

func contentError(err error) error {
	if errors.Is(err, entity.ErrContentNotFound) {
		return contentNotFound()
	}
	return databaseError(err)
}

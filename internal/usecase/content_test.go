package usecase_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/produtora-site/internal/entity"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

// MockPortfolioRepository
type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) CreateVideo(ctx context.Context, v *entity.PortfolioVideo) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockPortfolioRepository) ListVideos(ctx context.Context, onlyActive bool) ([]*entity.PortfolioVideo, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PortfolioVideo), args.Error(1)
}

func (m *MockPortfolioRepository) FindVideoByID(ctx context.Context, id string) (*entity.PortfolioVideo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PortfolioVideo), args.Error(1)
}

func (m *MockPortfolioRepository) UpdateVideo(ctx context.Context, v *entity.PortfolioVideo) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockPortfolioRepository) DeleteVideo(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPortfolioRepository) CreatePhoto(ctx context.Context, p *entity.PortfolioPhoto) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPortfolioRepository) ListPhotos(ctx context.Context, onlyActive bool) ([]*entity.PortfolioPhoto, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PortfolioPhoto), args.Error(1)
}

func (m *MockPortfolioRepository) FindPhotoByID(ctx context.Context, id string) (*entity.PortfolioPhoto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PortfolioPhoto), args.Error(1)
}

func (m *MockPortfolioRepository) UpdatePhoto(ctx context.Context, p *entity.PortfolioPhoto) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPortfolioRepository) DeletePhoto(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockTeamRepository
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, member *entity.TeamMember) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockTeamRepository) List(ctx context.Context, onlyActive bool) ([]*entity.TeamMember, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id string) (*entity.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) Update(ctx context.Context, member *entity.TeamMember) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestPublicVideosOnlyActive(t *testing.T) {
	portfolio := new(MockPortfolioRepository)
	portfolio.On("ListVideos", mock.Anything, true).Return([]*entity.PortfolioVideo{{ID: "v1", IsActive: true}}, nil)

	uc := usecase.NewContentUseCase(portfolio, new(MockTeamRepository), new(MockMediaStorage))
	videos, err := uc.PublicVideos(context.Background())
	require.NoError(t, err)
	assert.Len(t, videos, 1)
	portfolio.AssertExpectations(t)
}

func TestAddVideoValidation(t *testing.T) {
	portfolio := new(MockPortfolioRepository)
	uc := usecase.NewContentUseCase(portfolio, new(MockTeamRepository), new(MockMediaStorage))

	_, err := uc.AddVideo(context.Background(), adminSession(), usecase.VideoInput{
		Title:        "Institucional Acme",
		Category:     "Institucional",
		ThumbnailURL: "nao-e-url",
		VideoURL:     "https://youtube.com/watch?v=1",
	})
	var de *usecase.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "thumbnail_url", de.Field)
	assert.Equal(t, "Thumbnail deve ser uma URL válida", de.Message)
	portfolio.AssertNotCalled(t, "CreateVideo", mock.Anything, mock.Anything)
}

func TestAddVideoDefaultsActive(t *testing.T) {
	portfolio := new(MockPortfolioRepository)
	portfolio.On("CreateVideo", mock.Anything, mock.MatchedBy(func(v *entity.PortfolioVideo) bool {
		return v.IsActive && v.Title == "Institucional Acme" && v.DisplayOrder == 2
	})).Return(nil)

	uc := usecase.NewContentUseCase(portfolio, new(MockTeamRepository), new(MockMediaStorage))
	v, err := uc.AddVideo(context.Background(), adminSession(), usecase.VideoInput{
		Title:        " Institucional Acme ",
		Category:     "Institucional",
		ThumbnailURL: "https://cdn.example.com/t.jpg",
		VideoURL:     "https://youtube.com/watch?v=1",
		DisplayOrder: 2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	portfolio.AssertExpectations(t)
}

func TestUpdatePhotoNotFound(t *testing.T) {
	portfolio := new(MockPortfolioRepository)
	portfolio.On("FindPhotoByID", mock.Anything, "p-x").Return(nil, entity.ErrContentNotFound)

	uc := usecase.NewContentUseCase(portfolio, new(MockTeamRepository), new(MockMediaStorage))
	_, err := uc.UpdatePhoto(context.Background(), adminSession(), "p-x", usecase.PhotoInput{ImageURL: "https://cdn.example.com/p.jpg"})
	assert.Equal(t, usecase.CodeContentNotFound, usecase.ErrorCode(err))
}

func TestUpdateTeamMemberKeepsActiveWhenOmitted(t *testing.T) {
	member := entity.NewTeamMember("Rafa", "Diretor", 1, false)
	team := new(MockTeamRepository)
	team.On("FindByID", mock.Anything, member.ID).Return(member, nil)
	team.On("Update", mock.Anything, member).Return(nil)

	uc := usecase.NewContentUseCase(new(MockPortfolioRepository), team, new(MockMediaStorage))
	got, err := uc.UpdateTeamMember(context.Background(), adminSession(), member.ID, usecase.TeamMemberInput{
		Name:      "Rafa",
		Role:      "Diretor de Fotografia",
		Instagram: "@rafa",
	})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, "Diretor de Fotografia", got.Role)
	assert.Equal(t, "@rafa", got.Instagram)
}

func TestDeleteTeamMemberRequiresAdmin(t *testing.T) {
	team := new(MockTeamRepository)
	uc := usecase.NewContentUseCase(new(MockPortfolioRepository), team, new(MockMediaStorage))

	err := uc.DeleteTeamMember(context.Background(), &entity.Session{AccessToken: "tok"}, "m-1")
	assert.Equal(t, usecase.CodeForbidden, usecase.ErrorCode(err))
	team.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

var objectPath = regexp.MustCompile(`^thumbnails/\d+-[0-9a-f]{8}\.png$`)

func TestUploadMedia(t *testing.T) {
	storage := new(MockMediaStorage)
	storage.On("Upload", mock.Anything, mock.MatchedBy(objectPath.MatchString), "image/png", mock.Anything).
		Return("https://proj.supabase.co/storage/v1/object/public/portfolio/thumbnails/x.png", nil)

	uc := usecase.NewContentUseCase(new(MockPortfolioRepository), new(MockTeamRepository), storage)
	url, err := uc.UploadMedia(context.Background(), adminSession(), usecase.MediaThumbnails, "capa.png", "image/png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Contains(t, url, "/object/public/portfolio/")
	storage.AssertExpectations(t)
}

func TestUploadMediaErrors(t *testing.T) {
	storage := new(MockMediaStorage)
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket not found"))
	uc := usecase.NewContentUseCase(new(MockPortfolioRepository), new(MockTeamRepository), storage)

	_, err := uc.UploadMedia(context.Background(), adminSession(), "videos", "a.mp4", "video/mp4", strings.NewReader(""))
	assert.Equal(t, usecase.CodeValidation, usecase.ErrorCode(err))

	_, err = uc.UploadMedia(context.Background(), adminSession(), usecase.MediaTeam, "a.jpg", "image/jpeg", strings.NewReader(""))
	assert.Equal(t, usecase.CodeStorage, usecase.ErrorCode(err))
}

func TestMediaObjectName(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Regexp(t, `^1700000000123-[0-9a-f]{8}\.jpeg$`, usecase.MediaObjectName("foto.final.jpeg", now))
	assert.Regexp(t, `^1700000000123-[0-9a-f]{8}$`, usecase.MediaObjectName("semextensao", now))
	assert.NotEqual(t, usecase.MediaObjectName("a.jpg", now), usecase.MediaObjectName("a.jpg", now))
}

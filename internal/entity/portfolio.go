package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrContentNotFound = errors.New("conteúdo não encontrado")

type PortfolioVideo struct {
	ID           string    `json:"id"`
	Title        string    `json:"title" validate:"required,max=200"`
	Category     string    `json:"category" validate:"required,max=100"`
	ThumbnailURL string    `json:"thumbnail_url" validate:"required,url"`
	VideoURL     string    `json:"video_url" validate:"required,url"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PortfolioPhoto struct {
	ID           string    `json:"id"`
	Title        string    `json:"title" validate:"max=200"`
	ImageURL     string    `json:"image_url" validate:"required,url"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewPortfolioVideo(title, category, thumbnailURL, videoURL string, displayOrder int, active bool) *PortfolioVideo {
	now := time.Now()
	return &PortfolioVideo{
		ID:           uuid.New().String(),
		Title:        title,
		Category:     category,
		ThumbnailURL: thumbnailURL,
		VideoURL:     videoURL,
		DisplayOrder: displayOrder,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func NewPortfolioPhoto(title, imageURL string, displayOrder int, active bool) *PortfolioPhoto {
	now := time.Now()
	return &PortfolioPhoto{
		ID:           uuid.New().String(),
		Title:        title,
		ImageURL:     imageURL,
		DisplayOrder: displayOrder,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// List methods return rows by display_order, ties by insertion.
// onlyActive hides inactive rows from the public site.
type PortfolioRepositoryInterface interface {
	CreateVideo(ctx context.Context, v *PortfolioVideo) error
	ListVideos(ctx context.Context, onlyActive bool) ([]*PortfolioVideo, error)
	FindVideoByID(ctx context.Context, id string) (*PortfolioVideo, error)
	UpdateVideo(ctx context.Context, v *PortfolioVideo) error
	DeleteVideo(ctx context.Context, id string) error

	CreatePhoto(ctx context.Context, p *PortfolioPhoto) error
	ListPhotos(ctx context.Context, onlyActive bool) ([]*PortfolioPhoto, error)
	FindPhotoByID(ctx context.Context, id string) (*PortfolioPhoto, error)
	UpdatePhoto(ctx context.Context, p *PortfolioPhoto) error
	DeletePhoto(ctx context.Context, id string) error
}

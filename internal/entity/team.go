package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID           string    `json:"id"`
	Name         string    `json:"name" validate:"required,max=100"`
	Role         string    `json:"role" validate:"required,max=100"`
	Bio          string    `json:"bio" validate:"max=1000"`
	ImageURL     string    `json:"image_url" validate:"omitempty,url"`
	Instagram    string    `json:"instagram" validate:"max=255"`
	LinkedIn     string    `json:"linkedin" validate:"max=255"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewTeamMember(name, role string, displayOrder int, active bool) *TeamMember {
	now := time.Now()
	return &TeamMember{
		ID:           uuid.New().String(),
		Name:         name,
		Role:         role,
		DisplayOrder: displayOrder,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

type TeamRepositoryInterface interface {
	Create(ctx context.Context, m *TeamMember) error
	List(ctx context.Context, onlyActive bool) ([]*TeamMember, error)
	FindByID(ctx context.Context, id string) (*TeamMember, error)
	Update(ctx context.Context, m *TeamMember) error
	Delete(ctx context.Context, id string) error
}

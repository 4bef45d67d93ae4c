package usecase

import (
	"context"
	"io"

	"github.com/xavierca1/produtora-site/internal/entity"
)

// LeadNotifier tells a human operator that a lead arrived.
type LeadNotifier interface {
	NotifyLeadCreated(ctx context.Context, n LeadNotification) error
}

// LeadEventPublisher hands the notification to the broker; a worker then
// calls the LeadNotifier.
type LeadEventPublisher interface {
	PublishLeadCreated(ctx context.Context, n LeadNotification) error
}

type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (accessToken string, id *entity.Identity, err error)
	SignOut(ctx context.Context, accessToken string) error
}

type TokenVerifier interface {
	Verify(ctx context.Context, accessToken string) (*entity.Identity, error)
}

// MediaStorage stores a binary under path and returns its public URL.
type MediaStorage interface {
	Upload(ctx context.Context, path, contentType string, data io.Reader) (string, error)
}

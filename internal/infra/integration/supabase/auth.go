package supabase

import (
	"context"
	"fmt"
	"strings"

	"github.com/supabase-community/gotrue-go"

	"github.com/xavierca1/produtora-site/internal/entity"
)

// AuthClient signs admins in and out against the hosted auth service.
type AuthClient struct {
	client gotrue.Client
}

func NewAuthClient(authURL, anonKey string) *AuthClient {
	return &AuthClient{client: gotrue.New("", anonKey).WithCustomGoTrueURL(authURL)}
}

func (a *AuthClient) SignIn(ctx context.Context, email, password string) (string, *entity.Identity, error) {
	resp, err := a.client.SignInWithEmailPassword(email, password)
	if err != nil {
		if isCredentialError(err) {
			return "", nil, entity.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("auth sign-in: %w", err)
	}
	return resp.AccessToken, &entity.Identity{UserID: resp.User.ID.String(), Email: resp.User.Email}, nil
}

func (a *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	if err := a.client.WithToken(accessToken).Logout(); err != nil {
		return fmt.Errorf("auth sign-out: %w", err)
	}
	return nil
}

// Verify asks the auth service who owns the token. Used when no JWT secret
// is configured for local verification.
func (a *AuthClient) Verify(ctx context.Context, accessToken string) (*entity.Identity, error) {
	user, err := a.client.WithToken(accessToken).GetUser()
	if err != nil {
		if isTokenError(err) {
			return nil, entity.ErrInvalidToken
		}
		return nil, fmt.Errorf("auth get user: %w", err)
	}
	return &entity.Identity{UserID: user.ID.String(), Email: user.Email}, nil
}

func isCredentialError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid login credentials") || strings.Contains(msg, "invalid_grant")
}

func isTokenError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "401") || strings.Contains(msg, "403") || strings.Contains(msg, "bad_jwt")
}

package entity

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrInvalidToken       = errors.New("token inválido ou expirado")
)

// Identity is what the auth provider vouches for.
type Identity struct {
	UserID string
	Email  string
}

// Session is the admin surface's view of the signed-in user. It is created
// on sign-in (or token verification) and handed explicitly to every admin
// operation; signing out invalidates the access token at the provider.
type Session struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	AccessToken string `json:"-"`
	IsAdmin     bool   `json:"is_admin"`
}

type RoleRepositoryInterface interface {
	HasRole(ctx context.Context, userID, role string) (bool, error)
}

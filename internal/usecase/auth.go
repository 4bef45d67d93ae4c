package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/xavierca1/produtora-site/internal/entity"
)

const AdminRole = "admin"

type AuthUseCase struct {
	Provider AuthProvider
	Verifier TokenVerifier
	Roles    entity.RoleRepositoryInterface
}

func NewAuthUseCase(provider AuthProvider, verifier TokenVerifier, roles entity.RoleRepositoryInterface) *AuthUseCase {
	return &AuthUseCase{Provider: provider, Verifier: verifier, Roles: roles}
}

func (uc *AuthUseCase) SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "Email e senha são obrigatórios"}
	}

	token, id, err := uc.Provider.SignIn(ctx, email, input.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			return nil, &DomainError{Code: CodeInvalidCredentials, Message: "Email ou senha inválidos"}
		}
		return nil, &TechnicalError{Code: CodeAuthProvider, Message: err.Error(), Err: err}
	}

	sess, err := uc.sessionFor(ctx, token, id)
	if err != nil {
		return nil, err
	}
	return &SignInOutput{AccessToken: token, Session: sess}, nil
}

// Resolve turns a bearer token into a session. Non-admin users still get a
// session; admin operations reject it.
func (uc *AuthUseCase) Resolve(ctx context.Context, accessToken string) (*entity.Session, error) {
	if accessToken == "" {
		return nil, unauthorized()
	}
	id, err := uc.Verifier.Verify(ctx, accessToken)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidToken) {
			return nil, unauthorized()
		}
		return nil, &TechnicalError{Code: CodeAuthProvider, Message: err.Error(), Err: err}
	}
	return uc.sessionFor(ctx, accessToken, id)
}

// SignOut revokes the token at the provider; the session must not be used
// afterwards.
func (uc *AuthUseCase) SignOut(ctx context.Context, sess *entity.Session) error {
	if sess == nil || sess.AccessToken == "" {
		return unauthorized()
	}
	if err := uc.Provider.SignOut(ctx, sess.AccessToken); err != nil {
		return &TechnicalError{Code: CodeAuthProvider, Message: err.Error(), Err: err}
	}
	sess.AccessToken = ""
	sess.IsAdmin = false
	return nil
}

func (uc *AuthUseCase) sessionFor(ctx context.Context, token string, id *entity.Identity) (*entity.Session, error) {
	isAdmin, err := uc.Roles.HasRole(ctx, id.UserID, AdminRole)
	if err != nil {
		return nil, databaseError(err)
	}
	return &entity.Session{
		UserID:      id.UserID,
		Email:       id.Email,
		AccessToken: token,
		IsAdmin:     isAdmin,
	}, nil
}

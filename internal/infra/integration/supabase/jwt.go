package supabase

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/xavierca1/produtora-site/internal/entity"
)

const authenticatedAudience = "authenticated"

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier checks access tokens locally with the project's JWT secret,
// saving a round trip to the auth service on every admin request.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(ctx context.Context, accessToken string) (*entity.Identity, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(accessToken, claims,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(authenticatedAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, entity.ErrInvalidToken
	}
	return &entity.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}

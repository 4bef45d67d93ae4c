package handlers

import (
	"net/http"

	"github.com/xavierca1/produtora-site/internal/infra/http/middleware"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

type AuthHandler struct {
	authUC *usecase.AuthUseCase
}

func NewAuthHandler(authUC *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Login (POST /auth/login)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in usecase.SignInInput
	if !decode(w, r, &in) {
		return
	}
	out, err := h.authUC.SignIn(r.Context(), in)
	respond(w, http.StatusOK, out, err)
}

// Logout (POST /auth/logout)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.authUC.SignOut(r.Context(), middleware.SessionFrom(r.Context()))
	respondNoContent(w, err)
}

// Session (GET /auth/session)
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, middleware.SessionFrom(r.Context()))
}

package handlers

import (
	"net/http"

	"github.com/xavierca1/corporate-ask/internal/infra/http/middleware"
	"github.com/xavierca1/corporate-ask/internal/usecase"
)

type AuthHandler struct {
	UC *usecase.AuthUseCase
}

func NewAuthHandler(uc *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{UC: uc}
}

// Login (POST /api/auth/login)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.Credentials
	if !decodeJSON(w, r, &input) {
		return
	}

	res, err := h.UC.Login(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// SignUp (POST /api/auth/signup)
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var input usecase.Credentials
	if !decodeJSON(w, r, &input) {
		return
	}

	res, err := h.UC.SignUp(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// Logout (POST /api/auth/logout), behind Authenticate.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "not signed in")
		return
	}

	if err := h.UC.Logout(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		writeUseCaseError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me (GET /api/auth/me), behind Authenticate.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "not signed in")
		return
	}
	writeJSON(w, http.StatusOK, usecase.UserView{Username: claims.Username(), Role: claims.Role})
}

package handler

import (
	"net/http"

	"github.com/fieldday/api/internal/middleware"
	"github.com/fieldday/api/internal/model"
	"github.com/fieldday/api/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp handles POST /v1/auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteAppError(w, model.NewValidationError("Invalid request body", ""))
		return
	}

	WriteResult(w, http.StatusCreated, h.auth.SignUp(r.Context(), req.Email, req.Password))
}

// SignIn handles POST /v1/auth/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteAppError(w, model.NewValidationError("Invalid request body", ""))
		return
	}

	WriteResult(w, http.StatusOK, h.auth.SignIn(r.Context(), req.Email, req.Password))
}

// Refresh handles POST /v1/auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteAppError(w, model.NewValidationError("Invalid request body", ""))
		return
	}

	WriteResult(w, http.StatusOK, h.auth.Refresh(r.Context(), req.RefreshToken))
}

// SignOut handles POST /v1/auth/signout
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	res := h.auth.SignOut(r.Context(), middleware.GetUserID(r.Context()))
	if !res.Success() {
		WriteAppError(w, res.Error())
		return
	}
	WriteNoContent(w)
}

// SignOutAndRedirect handles GET /v1/auth/signout. The redirect happens
// whether or not sign-out succeeded; the user lands on the login page
// either way.
func (h *AuthHandler) SignOutAndRedirect(w http.ResponseWriter, r *http.Request) {
	_ = h.auth.SignOut(r.Context(), middleware.GetUserID(r.Context()))
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	WriteResult(w, http.StatusOK, h.auth.CurrentUser(r.Context()))
}

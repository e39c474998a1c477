package handler

import (
	"net/http"

	"github.com/mertkara/recipe-box/internal/service"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleSignup processes a JSON signup request.
// POST /api/auth/signup
// Request:  {"email":"...","name":"...","password":"...","confirmPassword":"..."}
// Response: {"token":"...","name":"..."}
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email           string `json:"email"`
		Name            string `json:"name"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	payload, err := h.auth.Signup(r.Context(), req.Email, req.Name, req.Password, req.ConfirmPassword)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthDTO(payload))
}

// HandleLogin processes a JSON login request.
// POST /api/auth/login
// Request:  {"email":"...","password":"..."}
// Response: {"token":"...","name":"..."}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	payload, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthDTO(payload))
}

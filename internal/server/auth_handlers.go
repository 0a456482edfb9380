package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Renan-Leal/libraflux/internal/auth"
	"github.com/Renan-Leal/libraflux/internal/user"
)

// AuthHandler serves signup and login
type AuthHandler struct {
	service *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteJSONError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	// Signup never grants ROOT; the default admin bootstrap is the
	// only path that creates one
	if req.Role == user.RoleRoot {
		WriteJSONError(w, http.StatusForbidden, "role not allowed")
		return
	}

	created, err := h.service.Signup(r.Context(), req.Email, req.Name, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			WriteJSONError(w, http.StatusConflict, "email already registered")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, "failed to create user")
		return
	}

	RespondWithJSON(w, http.StatusCreated, map[string]string{
		"email":   created.Email,
		"name":    created.Name,
		"role":    created.Role,
		"message": "User created successfully",
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			WriteJSONError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "login failed")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"access_token": token})
}

package http

import (
	"errors"
	"log/slog"
	"net/http"

	"paisa/internal/auth"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type sessionResponse struct {
	Token string   `json:"token"`
	User  userJSON `json:"user"`
}

type userJSON struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := s.auth.Login(sanitizeInput(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrMissingFields) {
			errorJSON(w, http.StatusUnprocessableEntity, "Please enter email and password")
			return
		}
		slog.InfoContext(r.Context(), "Login rejected", "email", req.Email)
		errorJSON(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		Token: token,
		User:  userJSON{Email: user.Email, Name: user.Name},
	})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := s.auth.Signup(sanitizeInput(req.Email), req.Password, sanitizeInput(req.Name))
	if err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, "Please fill in all fields")
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		Token: token,
		User:  userJSON{Email: user.Email, Name: user.Name},
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.Logout(bearerToken(r))
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

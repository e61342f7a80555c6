package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moneyy-app/savings-service/internal/models"
	"github.com/moneyy-app/savings-service/internal/repository"
	"github.com/moneyy-app/savings-service/internal/service"
	"github.com/sirupsen/logrus"
)

// Service is the business surface the handlers call
type Service interface {
	Authenticate(username, password string) (*models.User, error)
	HomeSummary(userID int) (*models.HomeSummary, error)
}

type Handler struct {
	svc Service
	log *logrus.Logger
}

func NewHandler(svc Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Root reports that the server is up; no authentication, no database.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Server is running. Use /api/... endpoints"))
}

// Login handles user authentication. No token or cookie is issued;
// every request re-authenticates via Basic auth.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authenticate(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"userId":  user.ID,
	})
}

// Home returns the authenticated user's recent transactions and budgets
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.HomeSummary(user.ID)
	if err != nil {
		h.log.Errorf("Home summary failed for user %d: %v", user.ID, err)
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// authenticate resolves the request's Basic-auth credentials to a user.
// On failure it writes the error response and returns ok=false.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	username, password, ok := r.BasicAuth()
	if !ok {
		w.Header().Set("WWW-Authenticate", "Basic")
		respondError(w, http.StatusUnauthorized, "Authorization required")
		return nil, false
	}
	if username == "" || password == "" {
		respondError(w, http.StatusBadRequest, "Username and password required")
		return nil, false
	}

	user, err := h.svc.Authenticate(username, password)
	switch {
	case err == nil:
		return user, true
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrInvalidPassword):
		respondError(w, http.StatusBadRequest, "Invalid password")
	default:
		h.log.Errorf("Authentication failed for %s: %v", username, err)
		respondError(w, http.StatusInternalServerError, "Database error")
	}
	return nil, false
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

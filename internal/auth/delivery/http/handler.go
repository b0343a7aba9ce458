package http

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/RehanShaikh007/texhub-backend/pkg/auth"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

// AuthHandler authenticates the single operator account configured through
// the environment (ADMIN_USERNAME, ADMIN_PASSWORD_HASH).
type AuthHandler struct {
	adminUsername string
	adminHash     string
}

// NewAuthHandlerFromEnv creates an auth handler from environment config
func NewAuthHandlerFromEnv() *AuthHandler {
	return &AuthHandler{
		adminUsername: os.Getenv("ADMIN_USERNAME"),
		adminHash:     os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers the auth routes
func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/login", h.Login).Methods("POST")
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if h.adminUsername == "" || h.adminHash == "" {
		logger.Warn(r.Context()).Msg("Admin credentials not configured")
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Invalid credentials",
		})
		return
	}

	if req.Username != h.adminUsername || !auth.CheckPassword(h.adminHash, req.Password) {
		logger.Warn(r.Context()).Str("username", req.Username).Msg("Failed login attempt")
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Invalid credentials",
		})
		return
	}

	token, err := auth.GenerateToken(req.Username, "admin")
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to generate token")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to generate token",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Login successful",
		Data: map[string]interface{}{
			"token":    token,
			"username": req.Username,
			"role":     "admin",
		},
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

// NotificationHandler exposes the per-category toggles and the dispatch audit
// log. Settings are plain rows, so the handler talks to the repositories
// directly.
type NotificationHandler struct {
	settings domain.SettingRepository
	logs     domain.LogRepository
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(settings domain.SettingRepository, logs domain.LogRepository) *NotificationHandler {
	return &NotificationHandler{settings: settings, logs: logs}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all notification routes
func (h *NotificationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/notifications/settings", h.ListSettings).Methods("GET")
	router.HandleFunc("/api/notifications/settings/{category}", h.UpdateSetting).Methods("PATCH")
	router.HandleFunc("/api/notifications/logs", h.ListLogs).Methods("GET")
}

// ListSettings handles GET /api/notifications/settings
func (h *NotificationHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.FindAll()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list notification settings")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list notification settings",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    settings,
	})
}

// UpdateSetting handles PATCH /api/notifications/settings/{category}
func (h *NotificationHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	known := false
	for _, c := range domain.Categories {
		if c == category {
			known = true
			break
		}
	}
	if !known {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Unknown notification category",
		})
		return
	}

	var req struct {
		Enabled bool `json:"enabled"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	setting := &domain.Setting{Category: category, Enabled: req.Enabled}
	if err := h.settings.Upsert(setting); err != nil {
		logger.Error(r.Context()).Err(err).Str("category", category).Msg("Failed to update notification setting")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to update notification setting",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Notification setting updated",
		Data:    setting,
	})
}

// ListLogs handles GET /api/notifications/logs
func (h *NotificationHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	logs, total, err := h.logs.FindAll(limit, offset)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list notification logs")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list notification logs",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"logs":  logs,
			"total": total,
		},
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

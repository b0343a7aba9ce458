package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/RehanShaikh007/texhub-backend/internal/adjustment/usecase/command"
	"github.com/RehanShaikh007/texhub-backend/internal/adjustment/usecase/query"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

// AdjustmentHandler handles HTTP requests for stock adjustments
type AdjustmentHandler struct {
	createHandler *command.CreateAdjustmentHandler
	listHandler   *query.ListAdjustmentsHandler
}

// NewAdjustmentHandler creates a new adjustment handler
func NewAdjustmentHandler(
	createHandler *command.CreateAdjustmentHandler,
	listHandler *query.ListAdjustmentsHandler,
) *AdjustmentHandler {
	return &AdjustmentHandler{createHandler: createHandler, listHandler: listHandler}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all adjustment routes
func (h *AdjustmentHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/adjustments", h.ListAdjustments).Methods("GET")
	router.HandleFunc("/api/adjustments", h.CreateAdjustment).Methods("POST")
}

// CreateAdjustment handles POST /api/adjustments
func (h *AdjustmentHandler) CreateAdjustment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StockID     uint    `json:"stock_id"`
		Color       string  `json:"color"`
		NewQuantity float64 `json:"new_quantity"`
		Reason      string  `json:"reason"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateAdjustmentCommand{
		StockID:     req.StockID,
		Color:       req.Color,
		NewQuantity: req.NewQuantity,
		Reason:      req.Reason,
	}

	adjustment, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("stock_id", req.StockID).Msg("Failed to create adjustment")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Adjustment recorded successfully",
		Data:    adjustment,
	})
}

// ListAdjustments handles GET /api/adjustments
func (h *AdjustmentHandler) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	adjustments, total, err := h.listHandler.Handle(query.ListAdjustmentsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list adjustments")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"adjustments": adjustments,
			"total":       total,
		},
	})
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, apperr.HTTPStatus(err), Response{
		Success: false,
		Error:   apperr.Message(err),
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/stock/usecase/command"
	"github.com/RehanShaikh007/texhub-backend/internal/stock/usecase/query"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

// StockHandler handles HTTP requests for stock lots using CQRS pattern
type StockHandler struct {
	createHandler *command.CreateStockHandler
	updateHandler *command.UpdateStockHandler
	deleteHandler *command.DeleteStockHandler

	getHandler  *query.GetStockHandler
	listHandler *query.ListStockHandler
	lowHandler  *query.LowStockHandler
}

// NewStockHandler creates a new stock handler
func NewStockHandler(
	createHandler *command.CreateStockHandler,
	updateHandler *command.UpdateStockHandler,
	deleteHandler *command.DeleteStockHandler,
	getHandler *query.GetStockHandler,
	listHandler *query.ListStockHandler,
	lowHandler *query.LowStockHandler,
) *StockHandler {
	return &StockHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
		lowHandler:    lowHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all stock routes
func (h *StockHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/stock", h.ListStock).Methods("GET")
	router.HandleFunc("/api/stock", h.CreateStock).Methods("POST")
	router.HandleFunc("/api/stock/low", h.ListLowStock).Methods("GET")
	router.HandleFunc("/api/stock/{id}", h.GetStock).Methods("GET")
	router.HandleFunc("/api/stock/{id}", h.UpdateStock).Methods("PUT")
	router.HandleFunc("/api/stock/{id}", h.DeleteStock).Methods("DELETE")
}

type variantRequest struct {
	Color    string  `json:"color"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

func variantInputs(reqs []variantRequest) []command.VariantInput {
	variants := make([]command.VariantInput, 0, len(reqs))
	for _, v := range reqs {
		variants = append(variants, command.VariantInput{
			Color:    v.Color,
			Quantity: v.Quantity,
			Unit:     v.Unit,
		})
	}
	return variants
}

// CreateStock handles POST /api/stock
func (h *StockHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StockType      string              `json:"stock_type"`
		Status         string              `json:"status"`
		Variants       []variantRequest    `json:"variants"`
		StockDetails   domain.StockDetails `json:"stock_details"`
		AdditionalInfo string              `json:"additional_info"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateStockCommand{
		StockType:      req.StockType,
		Status:         req.Status,
		Variants:       variantInputs(req.Variants),
		Details:        req.StockDetails,
		AdditionalInfo: req.AdditionalInfo,
	}

	lot, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("stock_type", req.StockType).Msg("Failed to create stock")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Stock created successfully",
		Data:    lot,
	})
}

// ListStock handles GET /api/stock
func (h *StockHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	lots, total, err := h.listHandler.Handle(query.ListStockQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list stock")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"stocks": lots,
			"total":  total,
		},
	})
}

// ListLowStock handles GET /api/stock/low
func (h *StockHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	lots, err := h.lowHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list low stock")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    lots,
	})
}

// GetStock handles GET /api/stock/{id}
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	lot, err := h.getHandler.Handle(query.GetStockQuery{StockID: id})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    lot,
	})
}

// UpdateStock handles PUT /api/stock/{id}
func (h *StockHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status         *string              `json:"status"`
		Variants       []variantRequest     `json:"variants"`
		StockDetails   *domain.StockDetails `json:"stock_details"`
		AdditionalInfo *string              `json:"additional_info"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateStockCommand{
		StockID:        id,
		Status:         req.Status,
		Details:        req.StockDetails,
		AdditionalInfo: req.AdditionalInfo,
	}
	if req.Variants != nil {
		cmd.Variants = variantInputs(req.Variants)
	}

	lot, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("stock_id", id).Msg("Failed to update stock")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
		Data:    lot,
	})
}

// DeleteStock handles DELETE /api/stock/{id}
func (h *StockHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteStockCommand{StockID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Uint("stock_id", id).Msg("Failed to delete stock")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock deleted successfully",
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid stock ID",
		})
		return 0, false
	}
	return uint(id), true
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

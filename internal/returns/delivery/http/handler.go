package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/RehanShaikh007/texhub-backend/internal/returns/usecase/command"
	"github.com/RehanShaikh007/texhub-backend/internal/returns/usecase/query"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

// ReturnHandler handles HTTP requests for return requests
type ReturnHandler struct {
	createHandler  *command.CreateReturnHandler
	resolveHandler *command.ResolveReturnHandler
	deleteHandler  *command.DeleteReturnHandler

	getHandler  *query.GetReturnHandler
	listHandler *query.ListReturnsHandler
}

// NewReturnHandler creates a new return handler
func NewReturnHandler(
	createHandler *command.CreateReturnHandler,
	resolveHandler *command.ResolveReturnHandler,
	deleteHandler *command.DeleteReturnHandler,
	getHandler *query.GetReturnHandler,
	listHandler *query.ListReturnsHandler,
) *ReturnHandler {
	return &ReturnHandler{
		createHandler:  createHandler,
		resolveHandler: resolveHandler,
		deleteHandler:  deleteHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all return routes
func (h *ReturnHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/returns", h.ListReturns).Methods("GET")
	router.HandleFunc("/api/returns", h.CreateReturn).Methods("POST")
	router.HandleFunc("/api/returns/{id}", h.GetReturn).Methods("GET")
	router.HandleFunc("/api/returns/{id}", h.DeleteReturn).Methods("DELETE")
	router.HandleFunc("/api/returns/{id}/approve", h.ApproveReturn).Methods("PATCH")
	router.HandleFunc("/api/returns/{id}/reject", h.RejectReturn).Methods("PATCH")
}

// CreateReturn handles POST /api/returns
func (h *ReturnHandler) CreateReturn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID  uint    `json:"order_id"`
		StockID  *uint   `json:"stock_id"`
		Product  string  `json:"product"`
		Color    string  `json:"color"`
		Quantity float64 `json:"quantity"`
		Reason   string  `json:"reason"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateReturnCommand{
		OrderID:    req.OrderID,
		StockLotID: req.StockID,
		Product:    req.Product,
		Color:      req.Color,
		Quantity:   req.Quantity,
		Reason:     req.Reason,
	}

	ret, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("order_id", req.OrderID).Msg("Failed to create return request")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Return request created successfully",
		Data:    ret,
	})
}

// ListReturns handles GET /api/returns
func (h *ReturnHandler) ListReturns(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	returns, total, err := h.listHandler.Handle(query.ListReturnsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list return requests")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"returns": returns,
			"total":   total,
		},
	})
}

// GetReturn handles GET /api/returns/{id}
func (h *ReturnHandler) GetReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ret, err := h.getHandler.Handle(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    ret,
	})
}

// ApproveReturn handles PATCH /api/returns/{id}/approve
func (h *ReturnHandler) ApproveReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ret, err := h.resolveHandler.Approve(r.Context(), id)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("return_id", id).Msg("Failed to approve return request")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Return request approved",
		Data:    ret,
	})
}

// RejectReturn handles PATCH /api/returns/{id}/reject
func (h *ReturnHandler) RejectReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ret, err := h.resolveHandler.Reject(r.Context(), id)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("return_id", id).Msg("Failed to reject return request")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Return request rejected",
		Data:    ret,
	})
}

// DeleteReturn handles DELETE /api/returns/{id}
func (h *ReturnHandler) DeleteReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(id); err != nil {
		logger.Error(r.Context()).Err(err).Uint("return_id", id).Msg("Failed to delete return request")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Return request deleted successfully",
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid return ID",
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

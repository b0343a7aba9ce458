package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/RehanShaikh007/texhub-backend/internal/customer/usecase/command"
	"github.com/RehanShaikh007/texhub-backend/internal/customer/usecase/query"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

// CustomerHandler handles HTTP requests for customers using CQRS pattern
type CustomerHandler struct {
	createHandler *command.CreateCustomerHandler
	updateHandler *command.UpdateCustomerHandler
	deleteHandler *command.DeleteCustomerHandler

	creditHandler *query.GetCreditHandler
	getHandler    *query.GetCustomerHandler
	listHandler   *query.ListCustomersHandler
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	createHandler *command.CreateCustomerHandler,
	updateHandler *command.UpdateCustomerHandler,
	deleteHandler *command.DeleteCustomerHandler,
	creditHandler *query.GetCreditHandler,
	getHandler *query.GetCustomerHandler,
	listHandler *query.ListCustomersHandler,
) *CustomerHandler {
	return &CustomerHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		creditHandler: creditHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes registers all customer routes
func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/customers", h.ListCustomers).Methods("GET")
	router.HandleFunc("/api/customers", h.CreateCustomer).Methods("POST")
	router.HandleFunc("/api/customers/{id}", h.GetCustomer).Methods("GET")
	router.HandleFunc("/api/customers/{id}", h.UpdateCustomer).Methods("PUT")
	router.HandleFunc("/api/customers/{id}", h.DeleteCustomer).Methods("DELETE")
	router.HandleFunc("/api/customers/{id}/credit", h.GetCredit).Methods("GET")
}

// CreateCustomer handles POST /api/customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name"`
		Phone       string  `json:"phone"`
		Address     string  `json:"address"`
		City        string  `json:"city"`
		CreditLimit float64 `json:"credit_limit"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateCustomerCommand{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		CreditLimit: req.CreditLimit,
	}

	customer, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("name", req.Name).Msg("Failed to create customer")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Customer created successfully",
		Data:    customer,
	})
}

// ListCustomers handles GET /api/customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	customers, total, err := h.listHandler.Handle(query.ListCustomersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list customers")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"customers": customers,
			"total":     total,
		},
	})
}

// GetCustomer handles GET /api/customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	customer, err := h.getHandler.Handle(query.GetCustomerQuery{CustomerID: id})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    customer,
	})
}

// GetCredit handles GET /api/customers/{id}/credit
func (h *CustomerHandler) GetCredit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	summary, err := h.creditHandler.Handle(query.GetCreditQuery{CustomerID: id})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    summary,
	})
}

// UpdateCustomer handles PUT /api/customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Phone       *string  `json:"phone"`
		Address     *string  `json:"address"`
		City        *string  `json:"city"`
		CreditLimit *float64 `json:"credit_limit"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateCustomerCommand{
		CustomerID:  id,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		CreditLimit: req.CreditLimit,
	}

	customer, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("customer_id", id).Msg("Failed to update customer")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Customer updated successfully",
		Data:    customer,
	})
}

// DeleteCustomer handles DELETE /api/customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteCustomerCommand{CustomerID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Uint("customer_id", id).Msg("Failed to delete customer")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Customer deleted successfully",
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid customer ID",
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

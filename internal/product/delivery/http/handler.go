package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/RehanShaikh007/texhub-backend/internal/product/usecase/command"
	"github.com/RehanShaikh007/texhub-backend/internal/product/usecase/query"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

// ProductHandler handles HTTP requests for products using CQRS pattern
type ProductHandler struct {
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	getHandler  *query.GetProductHandler
	listHandler *query.ListProductsHandler
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	getHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
) *ProductHandler {
	return &ProductHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
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

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.ListProducts).Methods("GET")
	router.HandleFunc("/api/products", h.CreateProduct).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.GetProduct).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.UpdateProduct).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.DeleteProduct).Methods("DELETE")
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string  `json:"name"`
		Description    string  `json:"description"`
		Category       string  `json:"category"`
		PricePerMeters float64 `json:"price_per_meters"`
		Unit           string  `json:"unit"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateProductCommand{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		PricePerMeters: req.PricePerMeters,
		Unit:           req.Unit,
	}

	product, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("name", req.Name).Msg("Failed to create product")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	products, total, err := h.listHandler.Handle(query.ListProductsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    total,
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := h.getHandler.Handle(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name           *string  `json:"name"`
		Description    *string  `json:"description"`
		Category       *string  `json:"category"`
		PricePerMeters *float64 `json:"price_per_meters"`
		Unit           *string  `json:"unit"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateProductCommand{
		ProductID:      id,
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		PricePerMeters: req.PricePerMeters,
		Unit:           req.Unit,
	}

	product, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to update product")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), id); err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", id).Msg("Failed to delete product")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
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

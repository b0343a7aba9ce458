package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/RehanShaikh007/texhub-backend/internal/order/usecase/command"
	"github.com/RehanShaikh007/texhub-backend/internal/order/usecase/query"
	"github.com/RehanShaikh007/texhub-backend/pkg/apperr"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

// OrderHandler handles HTTP requests for orders using CQRS pattern
type OrderHandler struct {
	// Command handlers
	createHandler *command.CreateOrderHandler
	updateHandler *command.UpdateOrderHandler
	deleteHandler *command.DeleteOrderHandler

	// Query handlers
	getHandler  *query.GetOrderHandler
	listHandler *query.ListOrdersHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	createHandler *command.CreateOrderHandler,
	updateHandler *command.UpdateOrderHandler,
	deleteHandler *command.DeleteOrderHandler,
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_requests_total",
			Help: "Total number of order requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_request_duration_seconds",
			Help:    "Duration of order requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &OrderHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", h.ListOrders)).Methods("GET")
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", h.CreateOrder)).Methods("POST")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", h.GetOrder)).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", h.UpdateOrder)).Methods("PUT")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", h.DeleteOrder)).Methods("DELETE")
}

type orderItemRequest struct {
	Product        string  `json:"product"`
	Color          string  `json:"color"`
	Quantity       float64 `json:"quantity"`
	PricePerMeters float64 `json:"price_per_meters"`
	StockID        *uint   `json:"stock_id,omitempty"`
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Customer     string             `json:"customer"`
		Status       string             `json:"status"`
		OrderDate    time.Time          `json:"order_date"`
		DeliveryDate time.Time          `json:"delivery_date"`
		Notes        string             `json:"notes"`
		OrderItems   []orderItemRequest `json:"order_items"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	items := make([]command.OrderItemInput, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		items = append(items, command.OrderItemInput{
			Product:        it.Product,
			Color:          it.Color,
			Quantity:       it.Quantity,
			PricePerMeters: it.PricePerMeters,
			StockLotID:     it.StockID,
		})
	}

	cmd := command.CreateOrderCommand{
		Customer:     req.Customer,
		Status:       req.Status,
		OrderDate:    req.OrderDate,
		DeliveryDate: req.DeliveryDate,
		Notes:        req.Notes,
		Items:        items,
	}

	order, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("customer", req.Customer).Msg("Failed to create order")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	customer := r.URL.Query().Get("customer")

	q := query.ListOrdersQuery{
		Page:     page,
		Limit:    limit,
		Customer: customer,
	}

	list, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    list,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := h.getHandler.Handle(query.GetOrderQuery{OrderID: id})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    order,
	})
}

// UpdateOrder handles PUT /api/orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status       *string    `json:"status"`
		OrderDate    *time.Time `json:"order_date"`
		DeliveryDate *time.Time `json:"delivery_date"`
		Notes        *string    `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateOrderCommand{
		OrderID:      id,
		Status:       req.Status,
		OrderDate:    req.OrderDate,
		DeliveryDate: req.DeliveryDate,
		Notes:        req.Notes,
	}

	order, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("order_id", id).Msg("Failed to update order")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order updated successfully",
		Data:    order,
	})
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteOrderCommand{OrderID: id}); err != nil {
		logger.Error(r.Context()).Err(err).Uint("order_id", id).Msg("Failed to delete order")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order deleted successfully",
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return 0, false
	}
	return uint(id), true
}

// respondError maps a classified error to its status code and envelope
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

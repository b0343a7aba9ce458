package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateOrder godoc
// @Summary Create a new order
// @Description Create an order; confirmed orders deduct stock immediately
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{customer=string,status=string,order_date=string,delivery_date=string,notes=string,order_items=array} true "Order data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrderDoc() {}

// ListOrders godoc
// @Summary List orders
// @Description Get a paginated list of orders, optionally filtered by customer
// @Tags Orders
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param customer query string false "Customer filter"
// @Success 200 {object} object{success=bool,data=object{orders=array,pagination=object}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/orders [get]
func (h *OrderHandler) ListOrdersDoc() {}

// GetOrder godoc
// @Summary Get order by ID
// @Description Get a specific order with its items
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrderDoc() {}

// UpdateOrder godoc
// @Summary Update an order
// @Description Patch order fields; changing status moves stock accordingly
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body object{status=string,order_date=string,delivery_date=string,notes=string} true "Order patch"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id} [put]
func (h *OrderHandler) UpdateOrderDoc() {}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Delete an order; confirmed orders restore their stock
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrderDoc() {}

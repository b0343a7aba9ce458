package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/RehanShaikh007/texhub-backend/api-gateway/config"
	"github.com/RehanShaikh007/texhub-backend/api-gateway/health"
	"github.com/RehanShaikh007/texhub-backend/api-gateway/middleware"
	"github.com/RehanShaikh007/texhub-backend/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	ServiceName  string
	Description  string
	RequireAuth  bool
	RequireAdmin bool
}

// Routes holds all route definitions
var Routes = []RouteDefinition{
	// Public routes (no auth required)
	{
		Prefix:      "/api/auth",
		ServiceName: "texhub",
		Description: "Authentication endpoints (login)",
	},

	{
		Prefix:      "/api/orders",
		ServiceName: "texhub",
		Description: "Order management",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/stock",
		ServiceName: "texhub",
		Description: "Stock lot management",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/customers",
		ServiceName: "texhub",
		Description: "Customer management",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/products",
		ServiceName: "texhub",
		Description: "Product catalog",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/adjustments",
		ServiceName: "texhub",
		Description: "Stock adjustments",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/returns",
		ServiceName: "texhub",
		Description: "Return requests",
		RequireAuth: true,
	},
	{
		Prefix:       "/api/notifications",
		ServiceName:  "texhub",
		Description:  "Notification settings and logs",
		RequireAuth:  true,
		RequireAdmin: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	reverseProxy := proxy.NewReverseProxy(cfg)

	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks backend instances)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllInstances(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed backend health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		return c.JSON(healthChecker.CheckAllInstances(ctx))
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "TexHub API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	var middlewares []fiber.Handler

	if route.RequireAdmin {
		middlewares = append(middlewares, middleware.AuthMiddleware(), middleware.AdminMiddleware())
	} else if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}

	group := app.Group(route.Prefix, middlewares...)

	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}

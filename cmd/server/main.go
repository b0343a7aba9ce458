package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/RehanShaikh007/texhub-backend/docs"
	adjustmenthttp "github.com/RehanShaikh007/texhub-backend/internal/adjustment/delivery/http"
	adjustmentrepo "github.com/RehanShaikh007/texhub-backend/internal/adjustment/repository"
	adjustmentcommand "github.com/RehanShaikh007/texhub-backend/internal/adjustment/usecase/command"
	adjustmentquery "github.com/RehanShaikh007/texhub-backend/internal/adjustment/usecase/query"
	authhttp "github.com/RehanShaikh007/texhub-backend/internal/auth/delivery/http"
	"github.com/RehanShaikh007/texhub-backend/internal/customer"
	customerrepo "github.com/RehanShaikh007/texhub-backend/internal/customer/repository"
	notifhttp "github.com/RehanShaikh007/texhub-backend/internal/notification/delivery/http"
	"github.com/RehanShaikh007/texhub-backend/internal/notification/dispatcher"
	notifdomain "github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	notifrepo "github.com/RehanShaikh007/texhub-backend/internal/notification/repository"
	"github.com/RehanShaikh007/texhub-backend/internal/notification/whatsapp"
	"github.com/RehanShaikh007/texhub-backend/internal/order"
	orderrepo "github.com/RehanShaikh007/texhub-backend/internal/order/repository"
	ordercommand "github.com/RehanShaikh007/texhub-backend/internal/order/usecase/command"
	producthttp "github.com/RehanShaikh007/texhub-backend/internal/product/delivery/http"
	productrepo "github.com/RehanShaikh007/texhub-backend/internal/product/repository"
	productcommand "github.com/RehanShaikh007/texhub-backend/internal/product/usecase/command"
	productquery "github.com/RehanShaikh007/texhub-backend/internal/product/usecase/query"
	returnshttp "github.com/RehanShaikh007/texhub-backend/internal/returns/delivery/http"
	returnsrepo "github.com/RehanShaikh007/texhub-backend/internal/returns/repository"
	returnscommand "github.com/RehanShaikh007/texhub-backend/internal/returns/usecase/command"
	returnsquery "github.com/RehanShaikh007/texhub-backend/internal/returns/usecase/query"
	"github.com/RehanShaikh007/texhub-backend/internal/stock"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
	stockrepo "github.com/RehanShaikh007/texhub-backend/internal/stock/repository"
	"github.com/RehanShaikh007/texhub-backend/kafka"
	"github.com/RehanShaikh007/texhub-backend/pkg/database"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
	"github.com/RehanShaikh007/texhub-backend/pkg/tracing"
)

func main() {
	// Initialize logger
	isDevelopment := getEnv("APP_ENV", "development") == "development"
	logger.Init("texhub-backend", isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	// Initialize tracing
	shutdownTracer, err := tracing.InitTracer("texhub-backend")
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracer(ctx); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load configuration from environment variables
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "texhub"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database with GORM
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Initialize repositories and run migrations
	stockRepository := stockrepo.NewGormStockRepositoryWithTracing(stockrepo.NewGormStockRepository(db))
	orderRepository := orderrepo.NewGormOrderRepository(db)
	customerRepository := customerrepo.NewGormCustomerRepository(db)
	productRepository := productrepo.NewGormProductRepository(db)
	adjustmentRepository := adjustmentrepo.NewGormAdjustmentRepository(db)
	returnRepository := returnsrepo.NewGormReturnRepository(db)
	settingRepository := notifrepo.NewGormSettingRepository(db)
	logRepository := notifrepo.NewGormLogRepository(db)

	for name, migrate := range map[string]func() error{
		"stock":        stockRepository.AutoMigrate,
		"order":        orderRepository.AutoMigrate,
		"customer":     customerRepository.AutoMigrate,
		"product":      productRepository.AutoMigrate,
		"adjustment":   adjustmentRepository.AutoMigrate,
		"return":       returnRepository.AutoMigrate,
		"notification": settingRepository.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			logger.Logger.Fatal().Err(err).Str("entity", name).Msg("Failed to run migrations")
		}
	}
	if err := logRepository.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate notification logs")
	}
	if err := settingRepository.SeedDefaults(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed notification settings")
	}

	// Notification dispatch: WhatsApp gateway behind the per-category toggles
	notifier := dispatcher.New(settingRepository, logRepository, whatsapp.NewClientFromEnv())

	// Kafka publisher is optional; without brokers the server still runs,
	// it just skips event publishing
	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	var events ordercommand.EventPublisher
	publisher, err := kafka.NewPublisher(brokers)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka unavailable, event publishing disabled")
	} else {
		events = publisher
		defer publisher.Close()
	}

	// Stock-low consumer routes depletion events back into the dispatcher as
	// low-stock alerts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if publisher != nil {
		consumer, err := kafka.NewConsumer(brokers, getEnv("KAFKA_GROUP_ID", "texhub-alerts"), func(ctx context.Context, event kafka.StockLowEvent) error {
			notifier.Dispatch(ctx, notifdomain.CategoryLowStock,
				fmt.Sprintf("Low stock alert: %q (lot #%d) down to %.2f, status %s",
					event.Product, event.StockLotID, event.TotalQuantity, event.Status))
			return nil
		})
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to start Kafka consumer, low-stock alerts disabled")
		} else {
			consumer.Start(ctx)
			defer consumer.Close()
		}
	}

	sticky := stockdomain.StickySetFromEnv()

	// Stock, order and customer handlers go through Wire; the rest use manual DI
	orderHandler, err := order.InitializeHTTPHandler(db, sticky, notifier, events)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}

	stockHandler, err := stock.InitializeHTTPHandler(db, sticky, notifier)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize stock handler")
	}

	customerHandler, err := customer.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize customer handler")
	}

	productHandler := producthttp.NewProductHandler(
		productcommand.NewCreateProductHandler(productRepository, notifier),
		productcommand.NewUpdateProductHandler(productRepository, notifier),
		productcommand.NewDeleteProductHandler(productRepository, notifier),
		productquery.NewGetProductHandler(productRepository),
		productquery.NewListProductsHandler(productRepository),
	)

	adjustmentHandler := adjustmenthttp.NewAdjustmentHandler(
		adjustmentcommand.NewCreateAdjustmentHandler(adjustmentRepository, stockRepository, sticky, notifier),
		adjustmentquery.NewListAdjustmentsHandler(adjustmentRepository),
	)

	returnHandler := returnshttp.NewReturnHandler(
		returnscommand.NewCreateReturnHandler(returnRepository, orderRepository, notifier),
		returnscommand.NewResolveReturnHandler(returnRepository, notifier),
		returnscommand.NewDeleteReturnHandler(returnRepository),
		returnsquery.NewGetReturnHandler(returnRepository),
		returnsquery.NewListReturnsHandler(returnRepository),
	)

	notificationHandler := notifhttp.NewNotificationHandler(settingRepository, logRepository)
	authHandler := authhttp.NewAuthHandlerFromEnv()

	// Setup router
	router := mux.NewRouter()
	middlewareConfig := authhttp.DefaultMiddlewareConfig()
	authhttp.RegisterMiddlewares(router, middlewareConfig)

	orderHandler.RegisterRoutes(router)
	stockHandler.RegisterRoutes(router)
	customerHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	adjustmentHandler.RegisterRoutes(router)
	returnHandler.RegisterRoutes(router)
	notificationHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Health check
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlDB.Ping(); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"success":false,"error":"Database unavailable"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"texhub-backend is healthy"}`))
	}).Methods("GET")

	corsHandler := authhttp.SetupCORS(middlewareConfig)

	port := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + port,
		Handler: corsHandler(router),
	}

	go func() {
		logger.Logger.Info().Str("port", port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	logger.Logger.Info().Msg("Server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

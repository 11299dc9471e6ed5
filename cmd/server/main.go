package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/gstbill/backend/internal/application/billing"
	catalogapp "github.com/gstbill/backend/internal/application/catalog"
	inventoryapp "github.com/gstbill/backend/internal/application/inventory"
	partnerapp "github.com/gstbill/backend/internal/application/partner"
	"github.com/gstbill/backend/internal/infrastructure/config"
	"github.com/gstbill/backend/internal/infrastructure/logger"
	"github.com/gstbill/backend/internal/infrastructure/persistence"
	"github.com/gstbill/backend/internal/interfaces/http/handler"
	"github.com/gstbill/backend/internal/interfaces/http/middleware"
	"github.com/gstbill/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Connect to database with a zap-backed GORM logger
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.NewGormLogger(log, gormLogLevel))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	if err := persistence.AutoMigrate(db.DB); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	batchRepo := persistence.NewGormBatchRepository(db.DB)
	billRepo := persistence.NewGormBillRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	slabRepo := persistence.NewGormGSTSlabRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)

	// Transaction scopes
	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB)
	billingScope := persistence.NewGormBillingTransactionScope(db.DB)

	// Initialize application services
	purchaseService := inventoryapp.NewPurchaseService(inventoryScope, companyRepo, log)
	stockService := inventoryapp.NewStockService(batchRepo, settingsRepo)
	billingService := billingapp.NewBillingService(billingScope, customerRepo, billRepo, log)
	partnerService := partnerapp.NewPartnerService(customerRepo, companyRepo)
	catalogService := catalogapp.NewCatalogService(slabRepo, settingsRepo)

	// Initialize HTTP handlers
	purchaseHandler := handler.NewPurchaseHandler(purchaseService, stockService)
	stockHandler := handler.NewStockHandler(stockService)
	billingHandler := handler.NewBillingHandler(billingService)
	partnerHandler := handler.NewPartnerHandler(partnerService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order: request ID first so recovery and request logs carry it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	router.NewRouter(engine).
		Register(purchaseHandler).
		Register(stockHandler).
		Register(billingHandler).
		Register(partnerHandler).
		Register(catalogHandler).
		Register(systemHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

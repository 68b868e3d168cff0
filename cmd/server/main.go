package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	billingapp "github.com/bottleops/backend/internal/application/billing"
	identityapp "github.com/bottleops/backend/internal/application/identity"
	inventoryapp "github.com/bottleops/backend/internal/application/inventory"
	partnerapp "github.com/bottleops/backend/internal/application/partner"
	rentalapp "github.com/bottleops/backend/internal/application/rental"
	"github.com/bottleops/backend/internal/infrastructure/auth"
	"github.com/bottleops/backend/internal/infrastructure/config"
	"github.com/bottleops/backend/internal/infrastructure/logger"
	"github.com/bottleops/backend/internal/infrastructure/persistence"
	"github.com/bottleops/backend/internal/interfaces/http/handler"
	"github.com/bottleops/backend/internal/interfaces/http/middleware"
	"github.com/bottleops/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting BottleOps Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	bottleRepo := persistence.NewGormBottleRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	pricingRepo := persistence.NewGormPricingRepositoryWithSeed(db.DB,
		decimal.NewFromFloat(cfg.Billing.DefaultBottlePrice))
	rentalScope := persistence.NewGormRentalTransactionScope(db.DB)
	billingScope := persistence.NewGormBillingTransactionScope(db.DB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	userService := identityapp.NewUserService(userRepo)
	clientService := partnerapp.NewClientService(clientRepo)
	bottleService := inventoryapp.NewBottleService(bottleRepo)
	txService := rentalapp.NewTransactionService(rentalScope, clientRepo)
	ledgerService := billingapp.NewLedgerService(billingScope, clientRepo,
		decimal.NewFromFloat(cfg.Billing.DefaultTaxPct))
	pricingService := billingapp.NewPricingService(pricingRepo)

	// Initialize handlers
	handlers := router.Handlers{
		System:      handler.NewSystemHandler(db),
		Auth:        handler.NewAuthHandler(authService),
		Client:      handler.NewClientHandler(clientService),
		Bottle:      handler.NewBottleHandler(bottleService),
		Transaction: handler.NewTransactionHandler(txService),
		Billing:     handler.NewBillingHandler(ledgerService),
		Pricing:     handler.NewPricingHandler(pricingService),
		User:        handler.NewUserHandler(userService),
	}

	// Setup Gin
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	// Global middleware, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	router.Register(engine, router.Config{
		Handlers:   handlers,
		JWTService: jwtService,
		Logger:     log,
	})

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

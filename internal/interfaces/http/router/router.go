package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bottleops/backend/internal/infrastructure/auth"
	"github.com/bottleops/backend/internal/interfaces/http/handler"
	"github.com/bottleops/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the router wires up.
type Handlers struct {
	System      *handler.SystemHandler
	Auth        *handler.AuthHandler
	Client      *handler.ClientHandler
	Bottle      *handler.BottleHandler
	Transaction *handler.TransactionHandler
	Billing     *handler.BillingHandler
	Pricing     *handler.PricingHandler
	User        *handler.UserHandler
}

// Config carries the dependencies route registration needs.
type Config struct {
	Handlers   Handlers
	JWTService *auth.JWTService
	Logger     *zap.Logger
}

// Register attaches all routes to the engine. Health probes live at the
// root; everything else sits under /api/v1 behind JWT authentication,
// with login and refresh as the only public endpoints.
func Register(engine *gin.Engine, cfg Config) {
	h := cfg.Handlers

	engine.GET("/health", h.System.Health)
	engine.GET("/ready", h.System.Health)

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: cfg.JWTService,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: cfg.Logger,
	}))

	system := api.Group("/system")
	system.GET("/ping", h.System.Ping)
	system.GET("/info", h.System.Info)

	authRoutes := api.Group("/auth")
	authRoutes.POST("/login", h.Auth.Login)
	authRoutes.POST("/refresh", h.Auth.Refresh)
	authRoutes.GET("/me", h.Auth.Me)
	authRoutes.POST("/change-password", h.Auth.ChangePassword)

	clients := api.Group("/clients")
	clients.POST("", h.Client.Create)
	clients.GET("", h.Client.List)
	clients.GET("/:id", h.Client.Get)
	clients.PUT("/:id", h.Client.Update)
	clients.POST("/:id/activate", h.Client.Activate)
	clients.POST("/:id/deactivate", h.Client.Deactivate)
	clients.DELETE("/:id", middleware.RequireAdmin(), h.Client.Delete)

	bottles := api.Group("/bottles")
	bottles.POST("/series", h.Bottle.RegisterSeries)
	bottles.GET("", h.Bottle.List)
	bottles.GET("/summary", h.Bottle.Summary)
	bottles.GET("/code/:code", h.Bottle.GetByCode)
	bottles.GET("/:id", h.Bottle.Get)

	transactions := api.Group("/transactions")
	transactions.POST("/delivery", h.Transaction.RecordDelivery)
	transactions.POST("/return", h.Transaction.RecordReturn)
	transactions.GET("", h.Transaction.List)
	transactions.GET("/:id", h.Transaction.Get)

	bills := api.Group("/bills")
	bills.POST("/auto", h.Billing.GenerateAuto)
	bills.POST("/custom", h.Billing.GenerateCustom)
	bills.POST("/preview", h.Billing.Preview)
	bills.GET("", h.Billing.List)
	bills.GET("/:id", h.Billing.Get)
	bills.POST("/:id/pay", h.Billing.MarkPaid)
	bills.DELETE("/:id", h.Billing.Delete)
	bills.GET("/clients/:id/summary", h.Billing.ClientSummary)

	pricing := api.Group("/pricing")
	pricing.GET("", h.Pricing.Get)
	pricing.PUT("", middleware.RequireAdmin(), h.Pricing.Update)

	users := api.Group("/users", middleware.RequireAdmin())
	users.POST("", h.User.Create)
	users.GET("", h.User.List)
	users.GET("/:id", h.User.Get)
	users.POST("/:id/activate", h.User.Activate)
	users.POST("/:id/deactivate", h.User.Deactivate)
}

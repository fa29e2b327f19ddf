package router

import (
	"time"

	"github.com/aashishdubey1/stock-inventory/internal/config"
	"github.com/aashishdubey1/stock-inventory/internal/handler"
	"github.com/aashishdubey1/stock-inventory/internal/middleware"
	"github.com/aashishdubey1/stock-inventory/internal/model"
	"github.com/aashishdubey1/stock-inventory/internal/repository"
	"github.com/aashishdubey1/stock-inventory/internal/service"
	"github.com/aashishdubey1/stock-inventory/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	godownRepo := repository.NewGodownRepository(db)
	drumRepo := repository.NewDrumStockRepository(db)
	looseRepo := repository.NewLooseStockRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	godownSvc := service.NewGodownService(godownRepo)
	stockSvc := service.NewStockService(drumRepo, looseRepo, txRepo, cfg.LowStockThresholdMeters)
	movementSvc := service.NewMovementService(txRepo, drumRepo, looseRepo, godownRepo, dispatcher, cfg.DispatchNotifyEmail)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	godownsH := handler.NewGodownsHandler(godownSvc)
	stocksH := handler.NewStocksHandler(stockSvc)
	looseH := handler.NewLooseStocksHandler(stockSvc)
	transactionsH := handler.NewTransactionsHandler(movementSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	supervisorOnly := middleware.RequireRole(model.RoleSupervisor)
	stockRoles := middleware.RequireRole(model.RoleSupervisor, model.RoleStockInCharge)

	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", authH.Me)
		v1.POST("/auth/register", supervisorOnly, authH.Register)

		godowns := v1.Group("/godowns")
		{
			godowns.GET("", godownsH.List)
			godowns.GET("/:id", godownsH.Get)
			godowns.POST("", supervisorOnly, godownsH.Create)
			godowns.PUT("/:id", supervisorOnly, godownsH.Update)
			godowns.DELETE("/:id", supervisorOnly, godownsH.Delete)
		}

		cableStocks := v1.Group("/cable-stocks")
		{
			cableStocks.GET("", stocksH.List)
			cableStocks.POST("", stockRoles, stocksH.Create)
			cableStocks.DELETE("/:id", supervisorOnly, stocksH.Delete)
		}

		looseLengths := v1.Group("/loose-lengths")
		{
			looseLengths.GET("", looseH.List)
			looseLengths.POST("", stockRoles, looseH.Create)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", transactionsH.List)
			transactions.POST("/out", stockRoles, transactionsH.Dispatch)
			transactions.POST("/transfer", stockRoles, transactionsH.Transfer)
		}
	}

	return r
}

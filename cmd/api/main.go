package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tokovape/tokovape_api/internal/cache"
	"github.com/tokovape/tokovape_api/internal/config"
	"github.com/tokovape/tokovape_api/internal/database"
	"github.com/tokovape/tokovape_api/internal/handler"
	"github.com/tokovape/tokovape_api/internal/middleware"
	"github.com/tokovape/tokovape_api/internal/repository"
	"github.com/tokovape/tokovape_api/internal/service"
	"github.com/tokovape/tokovape_api/internal/sse"
	"github.com/tokovape/tokovape_api/internal/utils"
	"github.com/tokovape/tokovape_api/internal/worker"
)

// main is the application entrypoint for the Toko Vape catalog API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting tokovape api")

	utils.InitJWT(cfg.JWTSecret)

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	catalogCache := cache.NewCatalogCache(redisClient, cfg.Catalog.DetailCacheTTL)

	// 4. Initialize repositories
	branchRepo := repository.NewBranchRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	optionRepo := repository.NewOptionRepository(db)
	skuRepo := repository.NewSKURepository(db)
	stockRepo := repository.NewStockRepository(db)
	staffRepo := repository.NewStaffUserRepository(db)

	// 5. Initialize SSE hub
	hub := sse.NewHub()
	notifier := sse.NewHubNotifier(hub)

	// 6. Initialize services
	authSvc := service.NewAuthService(staffRepo)
	catalogSvc := service.NewCatalogService(productRepo, optionRepo, skuRepo, stockRepo, catalogCache)
	stockSvc := service.NewStockService(stockRepo, branchRepo, notifier)
	productMgmtSvc := service.NewProductManagementService(productRepo, optionRepo, skuRepo, catalogCache)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:            handler.NewHealthHandler(db, redisClient),
		Catalog:           handler.NewCatalogHandler(catalogSvc, productRepo),
		Branch:            handler.NewBranchHandler(branchRepo),
		Category:          handler.NewCategoryHandler(categoryRepo),
		Auth:              handler.NewAuthHandler(authSvc),
		Stock:             handler.NewStockHandler(stockSvc),
		ProductManagement: handler.NewProductManagementHandler(productMgmtSvc, productRepo),
		SSE:               handler.NewSSEHandler(hub),
	}

	// 8. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware()
	loginRl := middleware.NewLoginRateLimit()

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw, loginRl)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	go worker.NewLowStockWorker(stockSvc, notifier, cfg.Worker.LowStockInterval).Start(ctx)
	go worker.NewCacheWarmWorker(catalogSvc, cfg.Worker.CacheWarmInterval).Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health            *handler.HealthHandler
	Catalog           *handler.CatalogHandler
	Branch            *handler.BranchHandler
	Category          *handler.CategoryHandler
	Auth              *handler.AuthHandler
	Stock             *handler.StockHandler
	ProductManagement *handler.ProductManagementHandler
	SSE               *handler.SSEHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware, loginRl *middleware.LoginRateLimit) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Public storefront routes
	catalog := router.Group("/v1/catalog")
	{
		catalog.GET("/products", handlers.Catalog.ListProducts)
		catalog.GET("/products/:slug", handlers.Catalog.GetProduct)
		catalog.POST("/products/:slug/resolve", handlers.Catalog.Resolve)
		catalog.POST("/products/:slug/order-link", handlers.Catalog.OrderLink)
		catalog.GET("/brands", handlers.Catalog.GetBrands)
		catalog.GET("/categories", handlers.Category.List)
		catalog.GET("/branches", handlers.Branch.ListActive)
	}

	// Staff authentication
	router.POST("/v1/auth/login", loginRl.Handle(), handlers.Auth.Login)

	// Dashboard SSE (token via query param, validated in the handler)
	router.GET("/v1/dashboard/sse", handlers.SSE.Stream)

	// Staff dashboard routes (admin and vaporista)
	dashboard := router.Group("/v1/dashboard")
	dashboard.Use(jwtMiddleware.Handle())
	{
		dashboard.GET("/me", handlers.Auth.Me)
		dashboard.GET("/branches/:branchId/stock", handlers.Stock.ListByBranch)
		dashboard.PUT("/branches/:branchId/stock/:skuId", handlers.Stock.SetQuantity)
		dashboard.PATCH("/branches/:branchId/stock/:skuId", handlers.Stock.AdjustQuantity)
	}

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.Use(jwtMiddleware.Handle(), jwtMiddleware.RequireAdmin())
	{
		// Branch management
		admin.GET("/branches", handlers.Branch.ListAll)
		admin.POST("/branches", handlers.Branch.Create)
		admin.PUT("/branches/:id", handlers.Branch.Update)
		admin.DELETE("/branches/:id", handlers.Branch.Delete)

		// Category management
		admin.POST("/categories", handlers.Category.Create)
		admin.PUT("/categories/:id", handlers.Category.Update)
		admin.DELETE("/categories/:id", handlers.Category.Delete)

		// Product management
		admin.GET("/products", handlers.ProductManagement.ListProducts)
		admin.POST("/products", handlers.ProductManagement.CreateProduct)
		admin.GET("/products/:id", handlers.ProductManagement.GetProduct)
		admin.PUT("/products/:id", handlers.ProductManagement.UpdateProduct)
		admin.DELETE("/products/:id", handlers.ProductManagement.DeleteProduct)

		// Variant management
		admin.POST("/products/:id/option-types", handlers.ProductManagement.CreateOptionType)
		admin.DELETE("/option-types/:id", handlers.ProductManagement.DeleteOptionType)
		admin.POST("/option-types/:id/values", handlers.ProductManagement.CreateOptionValue)
		admin.DELETE("/option-values/:id", handlers.ProductManagement.DeleteOptionValue)
		admin.POST("/products/:id/skus", handlers.ProductManagement.CreateSKU)
		admin.GET("/products/:id/skus", handlers.ProductManagement.GetProductSKUs)
		admin.PUT("/skus/:id", handlers.ProductManagement.UpdateSKU)
		admin.DELETE("/skus/:id", handlers.ProductManagement.DeleteSKU)

		// Stock management
		admin.POST("/stock", handlers.Stock.Assign)
		admin.GET("/stock/low", handlers.Stock.LowStock)

		// Staff management
		admin.POST("/staff", handlers.Auth.CreateStaff)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

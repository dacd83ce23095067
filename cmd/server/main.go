package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	accountingapp "github.com/pos/backend/internal/application/accounting"
	catalogapp "github.com/pos/backend/internal/application/catalog"
	insightsapp "github.com/pos/backend/internal/application/insights"
	partnerapp "github.com/pos/backend/internal/application/partner"
	purchasingapp "github.com/pos/backend/internal/application/purchasing"
	salesapp "github.com/pos/backend/internal/application/sales"
	settingsapp "github.com/pos/backend/internal/application/settings"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/infrastructure/ai"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/infrastructure/mirror"
	"github.com/pos/backend/internal/infrastructure/persistence"
	"github.com/pos/backend/internal/interfaces/http/handler"
	"github.com/pos/backend/internal/interfaces/http/middleware"
	"github.com/pos/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting POS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize the stock mirror; a failed Redis connection degrades to a
	// noop mirror rather than blocking startup.
	var stockMirror catalog.StockMirror
	redisMirror, err := mirror.NewRedisStockMirror(&cfg.Mirror)
	if err != nil {
		log.Warn("Stock mirror unavailable, continuing without it", zap.Error(err))
		stockMirror = mirror.NoopStockMirror{}
	} else {
		stockMirror = redisMirror
		defer func() {
			if err := redisMirror.Close(); err != nil {
				log.Error("Error closing stock mirror", zap.Error(err))
			}
		}()
		log.Info("Stock mirror connected", zap.String("addr", cfg.Mirror.Addr()))
	}

	// Generative-text client for insight endpoints
	completer := ai.NewOpenAIClient(&cfg.AI)

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	tableRepo := persistence.NewGormTableRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	entryRepo := persistence.NewGormEntryRepository(db.DB)
	uiSettingsRepo := persistence.NewGormUISettingsRepository(db.DB)
	templateRepo := persistence.NewGormTemplateRepository(db.DB)
	propertySettingsRepo := persistence.NewGormPropertySettingsRepository(db.DB)

	// Initialize application services
	productService := catalogapp.NewProductService(productRepo, stockMirror, log)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	employeeService := partnerapp.NewEmployeeService(employeeRepo)
	purchaseOrderService := purchasingapp.NewPurchaseOrderService(purchaseOrderRepo, productRepo, stockMirror, log)
	orderService := salesapp.NewOrderService(orderRepo, productRepo)
	tableService := salesapp.NewTableService(tableRepo)
	paymentService := salesapp.NewPaymentService(paymentRepo, orderRepo)
	entryService := accountingapp.NewEntryService(entryRepo)
	uiSettingsService := settingsapp.NewUISettingsService(uiSettingsRepo)
	templateService := settingsapp.NewTemplateService(templateRepo)
	propertySettingsService := settingsapp.NewPropertySettingsService(propertySettingsRepo)
	insightService := insightsapp.NewInsightService(orderRepo, productRepo, customerRepo, employeeRepo, completer, log)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	customerHandler := handler.NewCustomerHandler(customerService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	purchaseOrderHandler := handler.NewPurchaseOrderHandler(purchaseOrderService)
	orderHandler := handler.NewOrderHandler(orderService)
	tableHandler := handler.NewTableHandler(tableService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	accountingHandler := handler.NewAccountingHandler(entryService)
	settingsHandler := handler.NewSettingsHandler(uiSettingsService, templateService, propertySettingsService)
	insightsHandler := handler.NewInsightsHandler(insightService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS, body limit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Catalog domain (products)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/low-stock", productHandler.LowStock)
	catalogRoutes.GET("/products/:id", productHandler.Get)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)
	catalogRoutes.POST("/products/:id/stock", productHandler.AdjustStock)

	// Partner domain (suppliers, customers, employees)
	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/suppliers", supplierHandler.Create)
	partnerRoutes.GET("/suppliers", supplierHandler.List)
	partnerRoutes.GET("/suppliers/:id", supplierHandler.Get)
	partnerRoutes.PUT("/suppliers/:id", supplierHandler.Update)
	partnerRoutes.DELETE("/suppliers/:id", supplierHandler.Delete)
	partnerRoutes.POST("/customers", customerHandler.Create)
	partnerRoutes.GET("/customers", customerHandler.List)
	partnerRoutes.GET("/customers/:id", customerHandler.Get)
	partnerRoutes.PUT("/customers/:id", customerHandler.Update)
	partnerRoutes.DELETE("/customers/:id", customerHandler.Delete)
	partnerRoutes.POST("/employees", employeeHandler.Create)
	partnerRoutes.GET("/employees", employeeHandler.List)
	partnerRoutes.GET("/employees/:id", employeeHandler.Get)
	partnerRoutes.PUT("/employees/:id", employeeHandler.Update)
	partnerRoutes.DELETE("/employees/:id", employeeHandler.Delete)

	// Purchasing domain (purchase orders, receipt workflow)
	purchasingRoutes := router.NewDomainGroup("purchasing", "/purchasing")
	purchasingRoutes.POST("/purchase-orders", purchaseOrderHandler.Create)
	purchasingRoutes.GET("/purchase-orders", purchaseOrderHandler.List)
	purchasingRoutes.GET("/purchase-orders/:id", purchaseOrderHandler.Get)
	purchasingRoutes.PUT("/purchase-orders/:id", purchaseOrderHandler.Update)
	purchasingRoutes.DELETE("/purchase-orders/:id", purchaseOrderHandler.Delete)
	purchasingRoutes.POST("/purchase-orders/:id/items", purchaseOrderHandler.AddItem)
	purchasingRoutes.POST("/purchase-orders/:id/receive", purchaseOrderHandler.Receive)
	purchasingRoutes.POST("/purchase-orders/:id/cancel", purchaseOrderHandler.Cancel)

	// Sales domain (orders, tables, payments)
	salesRoutes := router.NewDomainGroup("sales", "/sales")
	salesRoutes.POST("/orders", orderHandler.Create)
	salesRoutes.GET("/orders", orderHandler.List)
	salesRoutes.GET("/orders/:id", orderHandler.Get)
	salesRoutes.PUT("/orders/:id", orderHandler.Update)
	salesRoutes.DELETE("/orders/:id", orderHandler.Delete)
	salesRoutes.POST("/orders/:id/items", orderHandler.AddItem)
	salesRoutes.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	salesRoutes.GET("/orders/:id/payments", paymentHandler.ListByOrder)
	salesRoutes.POST("/tables", tableHandler.Create)
	salesRoutes.GET("/tables", tableHandler.List)
	salesRoutes.GET("/tables/:id", tableHandler.Get)
	salesRoutes.PUT("/tables/:id", tableHandler.Update)
	salesRoutes.DELETE("/tables/:id", tableHandler.Delete)
	salesRoutes.POST("/payments", paymentHandler.Create)
	salesRoutes.GET("/payments", paymentHandler.List)
	salesRoutes.GET("/payments/:id", paymentHandler.Get)
	salesRoutes.PUT("/payments/:id", paymentHandler.Update)
	salesRoutes.DELETE("/payments/:id", paymentHandler.Delete)

	// Accounting domain (entries, summary)
	accountingRoutes := router.NewDomainGroup("accounting", "/accounting")
	accountingRoutes.POST("/entries", accountingHandler.Create)
	accountingRoutes.GET("/entries", accountingHandler.List)
	accountingRoutes.GET("/entries/summary", accountingHandler.Summary)
	accountingRoutes.GET("/entries/:id", accountingHandler.Get)
	accountingRoutes.PUT("/entries/:id", accountingHandler.Update)
	accountingRoutes.DELETE("/entries/:id", accountingHandler.Delete)

	// Settings domain (UI, templates, property)
	settingsRoutes := router.NewDomainGroup("settings", "/settings")
	settingsRoutes.POST("/ui", settingsHandler.CreateUISettings)
	settingsRoutes.GET("/ui", settingsHandler.ListUISettings)
	settingsRoutes.GET("/ui/:id", settingsHandler.GetUISettings)
	settingsRoutes.PUT("/ui/:id", settingsHandler.UpdateUISettings)
	settingsRoutes.DELETE("/ui/:id", settingsHandler.DeleteUISettings)
	settingsRoutes.POST("/templates", settingsHandler.CreateTemplate)
	settingsRoutes.GET("/templates", settingsHandler.ListTemplates)
	settingsRoutes.GET("/templates/:id", settingsHandler.GetTemplate)
	settingsRoutes.PUT("/templates/:id", settingsHandler.UpdateTemplate)
	settingsRoutes.DELETE("/templates/:id", settingsHandler.DeleteTemplate)
	settingsRoutes.POST("/property", settingsHandler.CreatePropertySettings)
	settingsRoutes.GET("/property", settingsHandler.ListPropertySettings)
	settingsRoutes.GET("/property/:id", settingsHandler.GetPropertySettings)
	settingsRoutes.PUT("/property/:id", settingsHandler.UpdatePropertySettings)
	settingsRoutes.DELETE("/property/:id", settingsHandler.DeletePropertySettings)

	// Insights domain (generative analytics)
	insightsRoutes := router.NewDomainGroup("insights", "/insights")
	insightsRoutes.GET("/sales-trends", insightsHandler.SalesTrends)
	insightsRoutes.GET("/customers/:id/recommendations", insightsHandler.CustomerRecommendations)
	insightsRoutes.GET("/products/:id/optimize", insightsHandler.OptimizeInventory)
	insightsRoutes.GET("/employees/:id/performance", insightsHandler.EmployeePerformance)

	r.Register(catalogRoutes).
		Register(partnerRoutes).
		Register(purchasingRoutes).
		Register(salesRoutes).
		Register(accountingRoutes).
		Register(settingsRoutes).
		Register(insightsRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
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

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}

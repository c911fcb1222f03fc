package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/hsf/backend/internal/application/catalog"
	identityapp "github.com/hsf/backend/internal/application/identity"
	inventoryapp "github.com/hsf/backend/internal/application/inventory"
	procurementapp "github.com/hsf/backend/internal/application/procurement"
	salesapp "github.com/hsf/backend/internal/application/sales"
	"github.com/hsf/backend/internal/infrastructure/auth"
	"github.com/hsf/backend/internal/infrastructure/config"
	"github.com/hsf/backend/internal/infrastructure/logger"
	"github.com/hsf/backend/internal/infrastructure/persistence"
	"github.com/hsf/backend/internal/infrastructure/storage"
	"github.com/hsf/backend/internal/interfaces/http/handler"
	"github.com/hsf/backend/internal/interfaces/http/middleware"
	"github.com/hsf/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting HSF Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist backed by redis
	blacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer func() {
		if err := blacklist.Close(); err != nil {
			log.Error("Error closing redis", zap.Error(err))
		}
	}()

	// Attachment store: S3 when a bucket is configured, otherwise a stub
	// that returns placeholder URLs so the API stays usable in dev.
	var signer procurementapp.AttachmentSigner
	if cfg.Storage.Bucket != "" {
		store, err := storage.NewS3AttachmentStore(cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		signer = store
		log.Info("Object storage configured", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		signer = storage.NewStubAttachmentStore()
		log.Warn("No storage bucket configured, attachment URLs are stubs")
	}

	// Repositories
	componentRepo := persistence.NewGormComponentRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	ledgerRepo := persistence.NewGormLedgerRepository(db.DB)
	purchaseInvoiceRepo := persistence.NewGormPurchaseInvoiceRepository(db.DB)
	inboundDeliveryRepo := persistence.NewGormInboundDeliveryRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	salesQuoteRepo := persistence.NewGormSalesQuoteRepository(db.DB)
	salesInvoiceRepo := persistence.NewGormSalesInvoiceRepository(db.DB)
	salesDeliveryRepo := persistence.NewGormSalesDeliveryRepository(db.DB)

	// Transaction scopes
	procurementScope := persistence.NewGormProcurementTransactionScope(db.DB, log)
	salesScope := persistence.NewGormSalesTransactionScope(db.DB, log)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(jwtService, blacklist, cfg.Auth, log)
	componentService := catalogapp.NewComponentService(componentRepo, categoryRepo, log)
	purchaseInvoiceService := procurementapp.NewPurchaseInvoiceService(purchaseInvoiceRepo, inboundDeliveryRepo, procurementScope, log)
	inboundDeliveryService := procurementapp.NewInboundDeliveryService(inboundDeliveryRepo, procurementScope, signer, log)
	cartService := salesapp.NewCartService(cartRepo, componentRepo)
	quoteService := salesapp.NewQuoteService(salesQuoteRepo, salesScope, log)
	salesInvoiceService := salesapp.NewInvoiceService(salesInvoiceRepo, salesDeliveryRepo, salesScope, log)
	salesDeliveryService := salesapp.NewDeliveryService(salesDeliveryRepo, salesScope, log)
	movementService := inventoryapp.NewMovementService(ledgerRepo, componentRepo)

	// Background shipper for deliveries whose date has arrived
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	if cfg.Scheduler.Enabled {
		deliveryScheduler := salesapp.NewDeliveryScheduler(
			salesDeliveryRepo,
			salesDeliveryService,
			cfg.Scheduler.Interval,
			cfg.Scheduler.BatchSize,
			log,
		)
		go deliveryScheduler.Run(schedulerCtx)
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithOrigins(cfg.HTTP.CORSAllowOrigins))

	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuth(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
		},
		Logger: log,
	}))

	router.RegisterAll(r, router.Handlers{
		Auth:            handler.NewAuthHandler(authService),
		Component:       handler.NewComponentHandler(componentService),
		PurchaseInvoice: handler.NewPurchaseInvoiceHandler(purchaseInvoiceService),
		InboundDelivery: handler.NewInboundDeliveryHandler(inboundDeliveryService),
		Cart:            handler.NewCartHandler(cartService),
		SalesQuote:      handler.NewSalesQuoteHandler(quoteService),
		SalesInvoice:    handler.NewSalesInvoiceHandler(salesInvoiceService),
		SalesDelivery:   handler.NewSalesDeliveryHandler(salesDeliveryService),
		Stock:           handler.NewStockHandler(movementService),
	})
	r.Setup()

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
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

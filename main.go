package main

import (
	"os"
	"strconv"
	"time"

	"stockbook-backend/config"
	"stockbook-backend/controllers"
	"stockbook-backend/database"
	"stockbook-backend/middlewares"
	"stockbook-backend/notify"
	"stockbook-backend/repositories"
	"stockbook-backend/routes"
	"stockbook-backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// envInt reads an int env var with a default fallback.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func main() {
	logger := config.GetLogger()

	// ---- Database
	database.Connect()
	if err := database.Migrate(); err != nil {
		config.LogError(logger, "main", "main", "migrate", err)
		panic(err)
	}

	// ---- Wiring
	sink := notify.NewLogSink(logger)

	stockRepo := repositories.NewStockRepository(database.DB)
	supplierRepo := repositories.NewSupplierRepository(database.DB)
	purchaseRepo := repositories.NewPurchaseRepository(database.DB)
	saleRepo := repositories.NewSaleRepository(database.DB)
	ledgerRepo := repositories.NewLedgerRepository(database.DB)

	inventorySvc := services.NewInventoryService(stockRepo, sink)
	supplierSvc := services.NewSupplierService(supplierRepo, purchaseRepo, sink)
	purchaseSvc := services.NewPurchaseService(purchaseRepo, stockRepo, supplierRepo, ledgerRepo, inventorySvc, sink)
	saleSvc := services.NewSaleService(saleRepo, stockRepo, ledgerRepo, inventorySvc, sink)
	reportSvc := services.NewReportService(stockRepo, ledgerRepo, purchaseRepo, saleRepo)

	deps := routes.Deps{
		Stocks:    controllers.NewStockController(inventorySvc),
		Suppliers: controllers.NewSupplierController(supplierSvc),
		Purchases: controllers.NewPurchaseController(purchaseSvc),
		Sales:     controllers.NewSaleController(saleSvc),
		Reports:   controllers.NewReportController(reportSvc),
	}

	// ---- Limits (configurable via env)
	bodyLimitBytes := envInt("BODY_LIMIT_BYTES", 0)
	if bodyLimitBytes <= 0 {
		bodyLimitBytes = envInt("BODY_LIMIT_MB", 4) * 1024 * 1024
	}

	// ---- Fiber app with global error handler + body limit
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.ErrorHandler,
		BodyLimit:    bodyLimitBytes,
	})

	// ---- CORS
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: false, // using Bearer tokens, not cookies
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	// ---- Global rate limiter
	rlMax := envInt("RATE_LIMIT_MAX", 60)
	rlWindow := time.Duration(envInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second
	app.Use(limiter.New(limiter.Config{
		Max:        rlMax,
		Expiration: rlWindow,
	}))

	// ---- Routes
	routes.Register(app, deps)

	// ---- Start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.WithField("port", port).Info("starting API server")
	if err := app.Listen(":" + port); err != nil {
		panic(err)
	}
}

package main

import (
	"log"
	"os"
	"strings"

	"inventory-backend/internal/audit"
	"inventory-backend/internal/auth"
	"inventory-backend/internal/config"
	"inventory-backend/internal/dashboard"
	"inventory-backend/internal/database"
	"inventory-backend/internal/export"
	"inventory-backend/internal/ledger"
	"inventory-backend/internal/logger"
	"inventory-backend/internal/masters"
	"inventory-backend/internal/metrics"
	"inventory-backend/internal/models"
	"inventory-backend/internal/transactions"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("could not load config %s: %v", configPath, err)
	}

	zlog, err := logger.Init(cfg.App.Env)
	if err != nil {
		log.Fatalf("could not init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			zap.L().Error("unexpected error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	origins := strings.Split(cfg.HTTP.CORSOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Use(metrics.Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	if cfg.Metrics.Enabled {
		app.Get("/metrics", metrics.Handler())
	}

	api := app.Group("/api")

	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	protected.Post("/parts", masters.CreatePartHandler())
	protected.Get("/parts", masters.ListPartsHandler())
	protected.Put("/parts/:id", masters.UpdatePartHandler())
	protected.Delete("/parts/:id", auth.RequireRole(models.RoleAdmin), masters.DeletePartHandler())

	protected.Post("/suppliers", masters.CreateSupplierHandler())
	protected.Get("/suppliers", masters.ListSuppliersHandler())
	protected.Put("/suppliers/:id", masters.UpdateSupplierHandler())
	protected.Delete("/suppliers/:id", auth.RequireRole(models.RoleAdmin), masters.DeleteSupplierHandler())

	protected.Post("/companies", masters.CreateCompanyHandler())
	protected.Get("/companies", masters.ListCompaniesHandler())
	protected.Put("/companies/:id", masters.UpdateCompanyHandler())
	protected.Delete("/companies/:id", auth.RequireRole(models.RoleAdmin), masters.DeleteCompanyHandler())

	// Transaction streams are append-only, there is no update or delete.
	protected.Post("/warehouse-shipments", transactions.CreateShipmentHandler())
	protected.Get("/warehouse-shipments", transactions.ListShipmentsHandler())
	protected.Post("/company-dispatches", transactions.CreateDispatchHandler())
	protected.Get("/company-dispatches", transactions.ListDispatchesHandler())

	protected.Get("/availability", ledger.AvailabilityHandler())
	protected.Get("/stock-ledger", ledger.StockLedgerHandler())
	protected.Get("/stock-ledger/export/excel", export.StockLedgerExcelHandler())
	protected.Get("/stock-ledger/export/pdf", export.StockLedgerPDFHandler())

	protected.Get("/dashboard/stats", dashboard.StatsHandler())
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	zap.L().Info("server listening", zap.String("port", cfg.HTTP.Port))
	if err := app.Listen(":" + cfg.HTTP.Port); err != nil {
		log.Fatal(err)
	}
}

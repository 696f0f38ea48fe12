package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/EAATA-Brasil/backendAppShop/config"
	"github.com/EAATA-Brasil/backendAppShop/db"
	"github.com/EAATA-Brasil/backendAppShop/internal/audit"
	"github.com/EAATA-Brasil/backendAppShop/internal/devicegate/handler"
	repo "github.com/EAATA-Brasil/backendAppShop/internal/devicegate/repository/postgres"
	"github.com/EAATA-Brasil/backendAppShop/internal/devicegate/service"
	"github.com/EAATA-Brasil/backendAppShop/internal/webassets"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg := config.Load()
	ctx := context.Background()

	database, err := db.Open(ctx, db.Config{
		ConnString:      cfg.DBURL,
		ConnectAttempts: cfg.DBConnectAttempts,
	})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	var publisher audit.Publisher = audit.NoopPublisher{}
	if cfg.KafkaBrokers != "" {
		kafkaPublisher := audit.NewKafkaPublisher(audit.Config{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.AuditTopic,
		})
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	deviceRepo := repo.NewPostgresRepository(database.Pool)
	admissionService := service.NewAdmissionService(deviceRepo, publisher, cfg)
	settingsService := service.NewSettingsService(deviceRepo, cfg)
	gateHandler := handler.NewDeviceGateHandler(admissionService, settingsService, database)

	app := fiber.New()
	app.Use(helmet.New())
	app.Use(cors.New())

	inliner := webassets.NewInliner(cfg.AssetsDir)
	app.Get("/", inliner.IndexHandler("css/storefront.css"))
	app.Get("/assets/css/deferred.css", inliner.DeferredCSSHandler("css/storefront.css"))
	app.Static("/assets", cfg.AssetsDir)

	handler.RegisterRoutes(app, gateHandler, cfg.AdminKeyHash)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

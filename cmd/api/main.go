package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-stock-ledger/internal/config"
	"go-stock-ledger/internal/handler"
	"go-stock-ledger/internal/repository"
	"go-stock-ledger/internal/service"
	"go-stock-ledger/internal/ws"
	"go-stock-ledger/pkg/database"
	"go-stock-ledger/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load Env
	cfg := config.LoadConfig()
	cfg.SetupLogger()

	// 2. Setup Database
	db, err := database.Connect(cfg.Database())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	tokens := jwt.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	reportRepo := repository.NewReportRepo(db)

	authService := service.NewAuthService(userRepo, cfg.BcryptCost)
	invService := service.NewInventoryService(productRepo)
	reportService := service.NewReportService(reportRepo)

	router := &handler.Router{
		Auth:      handler.NewAuthHandler(authService, tokens),
		Inventory: handler.NewInventoryHandler(invService, wsHub),
		Dashboard: handler.NewDashboardHandler(reportService),
		Tokens:    tokens,
		Hub:       wsHub,
	}

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stock Ledger v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	router.Mount(app)

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			logrus.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}
	wsHub.Stop()

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logrus.Info("Server exited")
}

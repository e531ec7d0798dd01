package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fibranet/backoffice/internal/config"
	"github.com/fibranet/backoffice/internal/database"
	"github.com/fibranet/backoffice/internal/handlers"
	"github.com/fibranet/backoffice/internal/middleware"
	"github.com/fibranet/backoffice/internal/models"
	"github.com/fibranet/backoffice/internal/reports"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, then configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	// Connect to database and Redis; a dead backend at startup is fatal
	conn, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	// Run migrations (agenda table only; radacct belongs to FreeRADIUS)
	if err := models.AutoMigrate(conn.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "FibraNet Backoffice Reports v1.0",
		ServerHeader: "FibraNet",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   "Request failed",
				"details": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(compress.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "backoffice-reports",
		})
	})

	// Initialize handlers
	reportService := reports.NewService(conn)
	connectionHandler := handlers.NewConnectionHandler(reportService)
	statsHandler := handlers.NewStatsHandler(reportService)
	agendaHandler := handlers.NewAgendaHandler(conn.DB)

	// API routes
	api := app.Group("/api")
	api.Use(middleware.RateLimiter(100, 1*time.Minute))

	api.Get("/connections", connectionHandler.List)
	api.Get("/connections/user/:username/history", connectionHandler.UserHistory)
	api.Get("/concentrator-stats", statsHandler.ConcentratorStats)
	api.Get("/user-stats", statsHandler.UserStats)
	api.Get("/user-consumption/:username", statsHandler.UserConsumption)
	api.Get("/debug/user/:username", connectionHandler.DebugUser)

	// Agenda (calendar) routes
	agenda := api.Group("/agenda")
	agenda.Get("/", agendaHandler.List)
	agenda.Get("/:id", agendaHandler.Get)
	agenda.Post("/", agendaHandler.Create)
	agenda.Put("/:id", agendaHandler.Update)
	agenda.Delete("/:id", agendaHandler.Delete)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		app.Shutdown()
	}()

	// Start server
	addr := fmt.Sprintf(":%d", cfg.APIPort)
	log.Printf("Starting backoffice report server on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

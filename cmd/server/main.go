package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/autovista/inspect-api/internal/config"
	"github.com/autovista/inspect-api/internal/database"
	"github.com/autovista/inspect-api/internal/handlers"
	"github.com/autovista/inspect-api/internal/middleware"
	"github.com/autovista/inspect-api/internal/services"
)

func main() {
	// Load .env file if it exists
	godotenv.Load()

	// Load configuration
	cfg := config.Load()
	if cfg.IsProduction() && os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET must be set in production")
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create admin user if it doesn't exist
	if err := database.EnsureAdminUser(db, cfg); err != nil {
		log.Printf("Warning: Could not ensure admin user: %v", err)
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Create handler with dependencies
	h := handlers.New(db, cfg)

	// Initialize photo storage and plate scanning if configured
	var photoHandler *handlers.PhotoHandler
	if cfg.StorageConfigured() {
		storage, err := services.NewPhotoStorage(
			cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3Region, cfg.S3UseSSL,
		)
		if err != nil {
			log.Printf("Warning: Failed to initialize photo storage: %v", err)
		} else {
			if err := storage.EnsureBucket(context.Background()); err != nil {
				log.Printf("Warning: Failed to ensure S3 bucket exists: %v", err)
			}

			var scanner *services.PlateScanService
			if cfg.PlateScanEnabled {
				scanner, err = services.NewPlateScanService()
				if err != nil {
					log.Printf("Warning: Failed to initialize plate scanning: %v", err)
					scanner = nil
				} else {
					log.Println("Plate scanning service initialized")
				}
			}

			photoHandler = handlers.NewPhotoHandler(db, cfg, storage, scanner)
			log.Printf("Photo storage service initialized (bucket %s)", storage.GetBucketName())
		}
	} else {
		log.Println("S3 credentials not configured, photo uploads disabled")
	}

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API routes
	api := app.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Get("/me", middleware.AuthRequired(cfg), h.GetCurrentUser)
	auth.Post("/refresh", middleware.AuthRequired(cfg), h.RefreshToken)

	// Catalog routes (public read, caller identified when a token is sent)
	cat := api.Group("/catalog", middleware.AuthOptional(cfg))
	cat.Get("/", h.GetCatalog)
	cat.Get("/categories", h.GetCatalogCategories)
	cat.Get("/categories/:category/items", h.GetCatalogCategoryItems)
	cat.Get("/categories/:category/items/:item", h.GetCatalogItem)

	// Inspection routes (authenticated, owner-scoped)
	inspections := api.Group("/inspections", middleware.AuthRequired(cfg))
	inspections.Post("/", h.CreateInspection)
	inspections.Get("/", h.ListInspections)
	inspections.Get("/:id", h.GetInspection)
	if photoHandler != nil {
		// Deleting through the photo handler also removes stored objects
		inspections.Delete("/:id", photoHandler.DeleteInspection)
	} else {
		inspections.Delete("/:id", h.DeleteInspection)
	}
	inspections.Put("/:id/vehicle", h.UpdateVehicleInfo)
	inspections.Put("/:id/items/:category/:item", h.EvaluateItem)
	inspections.Post("/:id/reset", h.ResetInspection)
	inspections.Get("/:id/metrics", h.GetInspectionMetrics)
	inspections.Get("/:id/validate", h.ValidateInspection)
	inspections.Post("/:id/complete", h.CompleteInspection)
	inspections.Get("/:id/report", h.GetInspectionReport)

	// Photo routes (only if storage is available)
	if photoHandler != nil {
		inspections.Post("/:id/items/:category/:item/photos", photoHandler.UploadItemPhoto)
		inspections.Delete("/:id/items/:category/:item/photos/:index", photoHandler.RemoveItemPhoto)
		inspections.Get("/:id/items/:category/:item/photos/:index/url", photoHandler.GetItemPhotoURL)
		inspections.Post("/:id/plate-scan", photoHandler.ScanPlate)
	}

	// Admin routes
	admin := api.Group("/admin", middleware.AuthRequired(cfg), middleware.AdminRequired())
	admin.Get("/inspections", h.ListAllInspections)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

package main

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/evergreenlawns/evergreen-backend/internal/config"
	"github.com/evergreenlawns/evergreen-backend/internal/handler"
	"github.com/evergreenlawns/evergreen-backend/internal/models"
	"github.com/evergreenlawns/evergreen-backend/internal/repository"
	"github.com/evergreenlawns/evergreen-backend/internal/service"
	"github.com/evergreenlawns/evergreen-backend/pkg/email"
	"github.com/evergreenlawns/evergreen-backend/pkg/logger"
	"github.com/evergreenlawns/evergreen-backend/pkg/storage"
	"github.com/evergreenlawns/evergreen-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.LoadConfig()

	zapLogger := logger.New(cfg.LogFile)
	defer zapLogger.Sync()

	// Repositories (data directory and JSON files are created lazily here)
	galleryRepo, err := repository.NewGalleryRepository(cfg.DataDir, zapLogger)
	if err != nil {
		log.Fatal("Failed to open gallery collection:", err)
	}
	quoteRepo, err := repository.NewQuoteRepository(cfg.DataDir, zapLogger)
	if err != nil {
		log.Fatal("Failed to open quotes collection:", err)
	}

	// Upload storage
	uploadStorage, err := storage.NewLocalStorage(cfg.UploadsDir)
	if err != nil {
		log.Fatal("Failed to initialize upload storage:", err)
	}

	// Email service
	emailService := email.NewEmailService(cfg, zapLogger)

	validator := utils.NewValidator()

	// Services
	uploadService := service.NewUploadService(uploadStorage, validator)
	galleryService := service.NewGalleryService(galleryRepo, uploadService, zapLogger)
	quoteService := service.NewQuoteService(quoteRepo, emailService, zapLogger)

	// Handlers
	galleryHandler := handler.NewGalleryHandler(galleryService)
	quoteHandler := handler.NewQuoteHandler(quoteService, validator)

	// Router
	app := fiber.New(fiber.Config{
		// A before/after request carries two 10MB files plus form overhead.
		BodyLimit: 25 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			return c.Status(code).JSON(models.ErrorResponse(err.Error()))
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PATCH, DELETE",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Gallery routes
	api.Get("/gallery", galleryHandler.GetGallery)
	api.Post("/gallery/upload", galleryHandler.UploadImage)
	api.Post("/gallery/upload-before-after", galleryHandler.UploadBeforeAfter)
	api.Delete("/gallery/:id", galleryHandler.DeleteImage)

	// Quote routes
	api.Get("/quotes", quoteHandler.GetQuotes)
	api.Post("/quotes", quoteHandler.CreateQuote)
	api.Patch("/quotes/:id", quoteHandler.UpdateQuote)
	api.Delete("/quotes/:id", quoteHandler.DeleteQuote)

	// Uploaded images and the static site
	app.Static("/uploads", cfg.UploadsDir)
	app.Static("/", cfg.PublicDir)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}

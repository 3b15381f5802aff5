package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"photomap-backend/internal/handlers"
	"photomap-backend/internal/imagesink"
	"photomap-backend/internal/services"
	"photomap-backend/internal/store"
	"photomap-backend/internal/utils"
)

func Run() {
	// Load Env
	if err := utils.LoadEnv(); err != nil {
		log.Println("Warning: .env file not found")
	}

	ctx := context.Background()

	// Record store (mongo by default; the mongo backend connects lazily
	// on first request).
	st, err := store.New(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize photo store: %v", err)
	}

	// Image sink
	sink, err := imagesink.New()
	if err != nil {
		log.Fatalf("Failed to initialize image sink: %v", err)
	}

	// Services
	photoService := services.NewPhotoService(st, sink)
	authService, err := services.NewAuthService(utils.GetEnv("ADMIN_PASSWORD", ""))
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	if !authService.Enabled() {
		log.Println("Warning: ADMIN_PASSWORD not set, /api/photos is open")
	}

	app := NewRouter(photoService, authService)

	// Start Server
	port := utils.GetEnv("PORT", "3000")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Println("Gracefully shutting down...")
	_ = app.Shutdown()

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := st.Close(sctx); err != nil {
		log.Printf("Warning: store close: %v", err)
	}
	log.Println("Server shutdown complete")
}

// NewRouter builds the Fiber app with all routes and middleware. Split
// from Run so tests can drive the full HTTP surface in-process.
func NewRouter(photoService *services.PhotoService, authService *services.AuthService) *fiber.App {
	app := fiber.New(fiber.Config{
		// Camera captures arrive as base64 PNG data URIs, easily a few MB.
		BodyLimit: 20 * 1024 * 1024,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Ensure upload dir exists and serve uploaded files
	uploadDir := utils.GetEnv("UPLOAD_DIR", "uploads")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		log.Printf("Warning: failed to create upload dir: %v", err)
	}
	app.Static("/uploads", uploadDir)

	// Capture and admin map pages
	webDir := utils.GetEnv("WEB_DIR", "./web")
	app.Static("/", webDir)
	app.Get("/admin", func(c *fiber.Ctx) error {
		return c.SendFile(webDir + "/admin.html")
	})

	// Health Check
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API
	api := app.Group("/api")
	api.Post("/upload", handlers.UploadPhotoHandler(photoService))
	api.Post("/admin/login", handlers.AdminLoginHandler(authService))
	api.Get("/photos", handlers.AdminAuthMiddleware(authService), handlers.ListPhotosHandler(photoService))

	return app
}

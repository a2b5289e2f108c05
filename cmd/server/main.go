package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wathiq/internal/config"
	"wathiq/internal/database"
	"wathiq/internal/gateway"
	"wathiq/internal/handlers"
	"wathiq/internal/password"
	"wathiq/internal/progress"
	"wathiq/internal/repository"
	"wathiq/internal/security"
	"wathiq/internal/service"
	"wathiq/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	kvRepo := repository.NewKVRepository(db)
	scanRepo := repository.NewScanRepository(db)

	// Progress storage
	adapter := storage.NewAdapter(kvRepo)
	progressManager := progress.NewManager(adapter)

	// AI gateway; the server still runs without a key, AI endpoints just
	// report unavailable
	var gw gateway.Gateway
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, AI features disabled")
		gw = gateway.Unconfigured{}
	} else {
		client, err := gateway.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create AI gateway: %v", err)
		}
		defer client.Close()
		gw = client
	}

	// Initialize services
	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.TokenDuration)
	authService := service.NewAuthService(userRepo, tokens)
	learningService := service.NewLearningService(gw, progressManager)
	scanService := service.NewScanService(gw, scanRepo)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	evaluator := password.NewEvaluator(password.NewEstimator())

	// Initialize handlers
	authLimiter := security.NewRateLimiter(10, time.Minute)
	aiLimiter := security.NewRateLimiter(20, time.Minute)
	middleware := handlers.NewMiddleware(authService, authLimiter, aiLimiter)

	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(progressManager)
	learningHandler := handlers.NewLearningHandler(learningService, progressManager)
	scanHandler := handlers.NewScanHandler(scanService, emailService, cfg.UploadMaxSize)
	trustHandler := handlers.NewTrustHandler(gw, evaluator)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/login", middleware.RateLimit(authHandler.Login))

	// Profile routes
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(profileHandler.GetProfile))
	mux.HandleFunc("PUT /api/profile/avatar", middleware.RequireAuth(profileHandler.UpdateAvatar))

	// Learning path routes
	mux.HandleFunc("GET /api/modules", middleware.RequireAuth(learningHandler.ListModules))
	mux.HandleFunc("POST /api/modules/{id}/start", middleware.RequireAuth(middleware.AILimit(learningHandler.StartModule)))
	mux.HandleFunc("POST /api/modules/{id}/complete", middleware.RequireAuth(learningHandler.CompleteModule))

	// Scan routes
	mux.HandleFunc("POST /api/scan", middleware.RequireAuth(middleware.AILimit(scanHandler.Scan)))
	mux.HandleFunc("GET /api/scans", middleware.RequireAuth(scanHandler.History))
	mux.HandleFunc("POST /api/scans/{id}/email", middleware.RequireAuth(scanHandler.EmailReport))

	// Trust check routes
	mux.HandleFunc("POST /api/news/verify", middleware.RequireAuth(middleware.AILimit(trustHandler.VerifyNews)))
	mux.HandleFunc("POST /api/url/scan", middleware.RequireAuth(middleware.AILimit(trustHandler.AnalyzeURL)))
	mux.HandleFunc("POST /api/password/check", middleware.RequireAuth(trustHandler.CheckPassword))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"matrimonial-backend/internal/config"
	"matrimonial-backend/internal/database"
	"matrimonial-backend/internal/handlers"
	"matrimonial-backend/internal/middleware"
	"matrimonial-backend/internal/repository"
	"matrimonial-backend/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Connect to database and apply migrations
	db, err := database.Connect(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()
	log.Info().Msg("Database connection established")

	if err := database.Migrate(cfg.Database.URL()); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	swipeRepo := repository.NewSwipeRepository(db)
	matchRepo := repository.NewMatchRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, sessionRepo, cfg.Auth.SessionTTL(), cfg.Auth.BcryptCost)
	profileService := services.NewProfileService(userRepo)
	discoveryService := services.NewDiscoveryService(userRepo, swipeRepo, cfg.Discover.ScanLimit, services.StoreOrderRanker{})
	wsHub := services.NewWSHub()

	notifiers := []services.MatchNotifier{wsHub}
	if cfg.APNS.KeyPath != "" {
		pushNotifier, err := services.NewPushNotifier(cfg.APNS, userRepo)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create push notifier")
		}
		notifiers = append(notifiers, pushNotifier)
	}
	swipeService := services.NewSwipeService(swipeRepo, matchRepo, userRepo, notifiers...)

	photoService, err := services.NewPhotoService(userRepo, cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create photo service")
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg.Database.DBName)
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	discoverHandler := handlers.NewDiscoverHandler(discoveryService)
	swipeHandler := handlers.NewSwipeHandler(swipeService)
	photoHandler := handlers.NewPhotoHandler(photoService)
	wsHandler := handlers.NewWebSocketHandler(wsHub, authService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	// Routes
	r.Get("/", healthHandler.Root)
	r.Get("/test", healthHandler.Test)
	r.Post("/auth/signup", authHandler.Signup)
	r.Post("/auth/login", authHandler.Login)
	r.Get("/profile/{user_id}", profileHandler.PublicProfile)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authService))
		r.Get("/me", profileHandler.Me)
		r.Put("/me", profileHandler.UpdateMe)
		r.Put("/me/device", profileHandler.UpdateDevice)
		r.Post("/me/photos/upload", photoHandler.UploadPhoto)
		r.Get("/discover", discoverHandler.Discover)
		r.Post("/swipe", swipeHandler.Swipe)
		r.Get("/matches", swipeHandler.Matches)
	})

	// WebSocket route
	r.Get("/ws", wsHandler.HandleWebSocket)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

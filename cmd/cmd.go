package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swipe-travel-backend/internal/config"
	"swipe-travel-backend/internal/handlers"
	"swipe-travel-backend/internal/repository"
	"swipe-travel-backend/internal/seed"
	"swipe-travel-backend/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Connect to database
	db, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Database connection established")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	swipeRepo := repository.NewSwipeRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)
	journeyRepo := repository.NewJourneyRepository(db)
	rewardRepo := repository.NewRewardRepository(db)

	// Seed starter catalogs on first run
	if err := seed.Run(context.Background(), placeRepo, rewardRepo); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	// Initialize services
	photoStorage, err := services.NewPhotoStorage(cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create photo storage")
	}
	var generator services.ItineraryGenerator
	if cfg.LLM.APIKey != "" {
		generator = services.NewGeminiGenerator(cfg.LLM)
	} else {
		log.Warn().Msg("No LLM API key configured, trip generation uses fallback only")
	}

	userService := services.NewUserService(userRepo)
	placeService := services.NewPlaceService(placeRepo)
	swipeService := services.NewSwipeService(swipeRepo, userRepo, placeRepo, prefRepo)
	prefService := services.NewPreferenceService(prefRepo, userRepo)
	journeyService := services.NewJourneyService(journeyRepo, userRepo, photoStorage)
	rewardService := services.NewRewardService(rewardRepo, userRepo)
	tripService := services.NewTripService(placeRepo, generator)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	placeHandler := handlers.NewPlaceHandler(placeService)
	swipeHandler := handlers.NewSwipeHandler(swipeService)
	prefHandler := handlers.NewPreferenceHandler(prefService)
	journeyHandler := handlers.NewJourneyHandler(journeyService)
	rewardHandler := handlers.NewRewardHandler(rewardService)
	tripHandler := handlers.NewTripHandler(tripService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	// Routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.HealthCheck)

		r.Get("/places", placeHandler.ListPlaces)
		r.Get("/places/{place_id}", placeHandler.GetPlace)
		r.Get("/cities", placeHandler.GetCities)

		r.Get("/rewards", rewardHandler.GetRewards)

		r.Post("/trips/generate", tripHandler.GenerateTrip)

		r.Post("/users", userHandler.CreateUser)
		r.Route("/users/{line_user_id}", func(r chi.Router) {
			r.Get("/", userHandler.GetUser)
			r.Get("/stats", userHandler.GetUserStats)

			r.Get("/tinder-places", swipeHandler.GetTinderPlaces)
			r.Post("/swipes", swipeHandler.CreateSwipe)
			r.Get("/liked-places", swipeHandler.GetLikedPlaces)
			r.Delete("/liked-places", swipeHandler.ClearLikedPlaces)
			r.Delete("/liked-places/{place_id}", swipeHandler.RemoveLikedPlace)

			r.Get("/preferences", prefHandler.GetPreferences)
			r.Put("/preferences", prefHandler.UpdatePreferences)

			r.Post("/journeys", journeyHandler.CreateJourney)
			r.Get("/journeys/current", journeyHandler.GetCurrentJourney)
			r.Post("/journeys/{journey_id}/visit", journeyHandler.MarkVisited)

			r.Post("/rewards/redeem", rewardHandler.RedeemReward)
			r.Get("/rewards/redeemed", rewardHandler.GetRedeemedRewards)
		})
	})

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

package main // Entry point package

import (
	"log"  // Logging library
	"time" // Session TTL configuration

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/config"     // Internal config loader
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/database"   // MySQL connector
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/handler"    // HTTP handlers
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/middleware" // Rate limiting and response cache
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/queue"      // RabbitMQ consumer
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/repository" // Data access layer
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/router"     // Route registration
	"github.com/FadyAdel04/Re7lty-Graduation-Project-sub001/internal/session"    // Seat-map session store
)

func main() {
	// .env is optional; real deployments set variables in the environment.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Repositories over the shared DB handle.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	trips := repository.NewTripRepo(db)
	bookings := repository.NewBookingRepo(db)

	// Seat-map editing sessions live in memory; idle ones expire after 30
	// minutes.  A restart drops in-progress selections, never bookings.
	sessions := session.NewStore(30 * time.Minute)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	orgH := handler.NewOrganizerHandler(trips, bookings, sessions)
	travH := handler.NewTravelerHandler(trips, bookings, sessions)
	pubH := handler.NewPublicHandler(trips, bookings)

	e := echo.New() // Create Echo instance

	// Redis backs both the token-bucket rate limiter and the public response
	// cache.  The limiter guards every route; the cache only wraps the
	// public browse group.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, pubH, cacheMW)
	router.RegisterOrganizer(e, orgH, cfg.JWTSecret)
	router.RegisterTraveler(e, travH, cfg.JWTSecret)

	// Consume seat-map saved events in the background; the consumer
	// reconnects on broker failures and never takes the API down.
	go func() {
		if err := queue.StartSeatMapConsumer(); err != nil {
			log.Printf("queue consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}

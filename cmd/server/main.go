package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"stylecloset-service/internal/adapters/cache"
	"stylecloset-service/internal/adapters/llm"
	"stylecloset-service/internal/adapters/payments"
	"stylecloset-service/internal/adapters/places"
	"stylecloset-service/internal/adapters/repositories"
	"stylecloset-service/internal/api"
	"stylecloset-service/internal/auth"
	"stylecloset-service/internal/config"
	"stylecloset-service/internal/platform/db"
	"stylecloset-service/internal/ports"
	"stylecloset-service/internal/scheduler"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Google Places, OpenAI, Stripe)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (using environment variables)")
	}

	log.SetFormatter(&log.JSONFormatter{})
	if lvl, err := log.ParseLevel(config.Get("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	verifier, err := auth.NewVerifier(jwtSecret)
	if err != nil {
		log.WithError(err).Fatal("JWT_SECRET is required")
	}

	sqlDB, err := db.Open(databaseURL)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer sqlDB.Close()

	// Schema init is idempotent, safe to run on every start.
	if err := repositories.InitSchema(sqlDB); err != nil {
		log.WithError(err).Fatal("schema initialization failed")
	}

	placesClient := places.NewClient(os.Getenv("PLACES_API_KEY"), 10*time.Second)

	// Redis is optional; without it geocode results are cached in Postgres.
	var geocache ports.GeocodeCache = cache.NewSQLGeocodeCache(sqlDB)
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr, Password: os.Getenv("REDIS_PASSWORD")})
		geocache = cache.NewRedisGeocodeCache(rdb, 24*time.Hour)
		log.WithField("addr", addr).Info("using redis geocode cache")
	}

	outfitClient := llm.NewOutfitClient(
		os.Getenv("OPENAI_API_KEY"),
		config.Get("OPENAI_BASE_URL", ""),
		config.Get("OPENAI_MODEL", ""),
	)

	paymentClient := payments.NewCheckoutClient(
		os.Getenv("STRIPE_SECRET_KEY"),
		config.Get("STRIPE_BASE_URL", ""),
		config.Get("CHECKOUT_SUCCESS_URL", "https://example.com/checkout/success"),
		config.Get("CHECKOUT_CANCEL_URL", "https://example.com/checkout/cancel"),
	)

	closetRepo := repositories.NewPostgresClosetRepository(sqlDB)
	giftRepo := repositories.NewPostgresGiftRepository(sqlDB)
	orderRepo := repositories.NewPostgresOrderRepository(sqlDB)

	giftScheduler := scheduler.New(giftRepo, orderRepo, paymentClient)
	if err := giftScheduler.Start(config.Get("GIFT_CRON_SPEC", "0 * * * *")); err != nil {
		log.WithError(err).Fatal("gift scheduler failed to start")
	}
	defer giftScheduler.Stop()

	router := api.NewRouter(api.Deps{
		Places:   placesClient,
		Geocoder: placesClient,
		Geocache: geocache,
		Closet:   closetRepo,
		Gifts:    giftRepo,
		Orders:   orderRepo,
		Outfits:  outfitClient,
		Payments: paymentClient,
		Verifier: verifier,
	})

	port := config.Get("PORT", "8080")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown failed")
	}
	log.Info("server stopped")
}

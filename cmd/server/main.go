package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"cab/internal/app"
	"cab/internal/config"
	"cab/internal/domain"
	"cab/internal/handler"
	"cab/internal/maps"
	"cab/internal/pricing"
	internalRedis "cab/internal/redis"
	"cab/internal/repository/postgres"
	"cab/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	loc, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		log.Printf("invalid timezone %q, using local time: %v", cfg.Server.Timezone, err)
		loc = time.Local
	}

	// Distance provider is optional; quotes fall back to the configured
	// estimate when it is absent or unreachable.
	var distanceProvider service.DistanceProvider
	if cfg.Maps.APIKey != "" {
		routeService, err := maps.NewRouteService(cfg.Maps.APIKey, cfg.Maps.Region)
		if err != nil {
			log.Printf("failed to initialize maps client: %v (quotes will use fallback distance)", err)
		} else {
			distanceProvider = routeService
		}
	} else {
		log.Println("GOOGLE_MAPS_API_KEY not set, quotes will use fallback distance")
	}

	// Initialize Redis stores.
	quoteStore := internalRedis.NewQuoteStore(redisClient)

	// Initialize repositories.
	bookingRepo := postgres.NewBookingRepository(db)

	// Initialize services.
	calculator := pricing.NewCalculator(pricing.DefaultRateCard())
	quoteService := service.NewQuoteService(
		distanceProvider,
		calculator,
		quoteStore,
		cfg.Maps.Timeout,
		domain.DistanceResult{Km: cfg.Maps.FallbackKm, DurationMins: cfg.Maps.FallbackMinutes},
		loc,
	)
	notifier := service.NewWebhookNotifier(cfg.Notify.WebhookURL, cfg.Notify.Timeout)
	bookingService := service.NewBookingService(bookingRepo, quoteStore, notifier, loc)
	paymentService := service.NewPaymentService(bookingRepo, cfg.Payment.WebhookSecret)

	// Initialize handlers.
	quoteHandler := handler.NewQuoteHandler(quoteService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		QuoteHandler:   quoteHandler,
		BookingHandler: bookingHandler,
		PaymentHandler: paymentHandler,
		RedisClient:    redisClient,
		NewRelicApp:    nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/medblocks/records-service/internal/config"
	"github.com/medblocks/records-service/internal/db"
	"github.com/medblocks/records-service/internal/engine"
	apphttp "github.com/medblocks/records-service/internal/http"
	"github.com/medblocks/records-service/internal/messaging"
	"github.com/medblocks/records-service/internal/telemetry"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	telemetryProvider, err := telemetry.InitProvider(ctx, telemetry.LoadConfig())
	if err != nil {
		log.Printf("Warning: telemetry initialization failed: %v", err)
	}
	if telemetryProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			telemetryProvider.Shutdown(shutdownCtx)
		}()
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Printf("Warning: failed to initialize metrics: %v", err)
		metrics = nil
	}

	publisher, err := messaging.NewPublisher()
	if err != nil {
		log.Printf("Warning: failed to connect to RabbitMQ: %v", err)
		log.Println("Service will continue without event publishing")
		publisher = nil
	}
	if publisher != nil {
		defer publisher.Close()
	}

	// The engine is constructed lazily on the first data access; the
	// server starts even when the store is not reachable yet.
	provider := db.NewProvider(func() (engine.Engine, error) {
		return engine.Open(cfg.StorePath)
	})
	defer provider.Close()

	router := apphttp.SetupRouter(provider, publisher, metrics)

	log.Printf("records-service starting on %s (store: %s)", cfg.ListenAddr, cfg.StorePath)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, router))
}

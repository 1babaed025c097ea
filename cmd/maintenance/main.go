package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/medblocks/records-service/internal/config"
	"github.com/medblocks/records-service/internal/db"
	"github.com/medblocks/records-service/internal/engine"
)

// Store maintenance job: verifies store integrity, reports row counts
// and compacts the store file. Run it while the API is stopped; the
// embedded engine assumes a single process.
func main() {
	log.Println("Records Store Maintenance - Starting")

	godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	provider := db.NewProvider(func() (engine.Engine, error) {
		return engine.Open(cfg.StorePath)
	})
	defer provider.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	eng, err := provider.Get(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize storage engine: %v", err)
	}

	rows, err := eng.Query(ctx, "PRAGMA quick_check")
	if err != nil {
		log.Fatalf("Integrity check failed to run: %v", err)
	}
	for _, row := range rows {
		if result, err := row.Text("quick_check"); err == nil && result != "ok" {
			log.Fatalf("Integrity check reported: %s", result)
		}
	}
	log.Println("✓ Store integrity check passed")

	for _, table := range []string{"patients", "complaints"} {
		rows, err := eng.Query(ctx, "SELECT COUNT(*) AS n FROM "+table)
		if err != nil {
			log.Fatalf("Failed to count %s: %v", table, err)
		}
		if len(rows) == 1 {
			if n, err := rows[0].Int("n"); err == nil {
				log.Printf("%s: %d rows", table, n)
			}
		}
	}

	if err := eng.Execute(ctx, "VACUUM"); err != nil {
		log.Fatalf("Failed to compact store: %v", err)
	}
	log.Println("✓ Store compacted")

	log.Println("Records Store Maintenance - Completed")
}

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	orderpostgres "github.com/cheezenes/pos-api/internal/domains/orders/adapters/persistence/postgres"
	platformpostgres "github.com/cheezenes/pos-api/internal/platform/postgres"
)

// DefaultRetentionDays keeps a year of order history before the purge kicks in.
const DefaultRetentionDays = 365

func main() {
	_ = godotenv.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot purge order history")
	}

	retention := retentionFromEnv()
	cutoff := time.Now().AddDate(0, 0, -retention)
	repo := orderpostgres.NewRepository(db)
	purged, err := repo.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		log.Fatalf("failed to purge order history: %v", err)
	}
	log.Printf("order history purge completed: removed %d orders older than %d days", purged, retention)
}

func retentionFromEnv() int {
	raw := strings.TrimSpace(os.Getenv("ORDER_RETENTION_DAYS"))
	if raw == "" {
		return DefaultRetentionDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return DefaultRetentionDays
	}
	return days
}

package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/RamadhaniRO/voya-travel-platform/internal/database"
	"github.com/RamadhaniRO/voya-travel-platform/internal/repository"

	"github.com/joho/godotenv"
)

// Prunes read notifications and raw analytics events past their retention
// window. Meant to run from cron.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "voya.db"
	}

	retentionDays := 90
	if raw := os.Getenv("RETENTION_DAYS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			log.Fatalf("invalid RETENTION_DAYS: %q", raw)
		}
		retentionDays = n
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	ctx := context.Background()
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	notifications := repository.NewNotificationRepository(db)
	removed, err := notifications.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		log.Fatalf("notification cleanup failed: %v", err)
	}
	log.Printf("removed %d read notifications older than %s", removed, cutoff.Format("2006-01-02"))

	events := repository.NewAnalyticsRepository(db)
	removed, err = events.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.Fatalf("analytics cleanup failed: %v", err)
	}
	log.Printf("removed %d analytics events older than %s", removed, cutoff.Format("2006-01-02"))
}

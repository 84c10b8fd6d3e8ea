package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fortuna/apollo/internal/api/rest"
	"github.com/fortuna/apollo/internal/store"
)

// reportd serves the archived report runs written by cmd/apollo.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("ARCHIVE_DSN")
	if dsn == "" {
		log.Fatal("ARCHIVE_DSN is required")
	}
	port := getEnv("REST_PORT", "8080")

	db, err := store.NewDatabase(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to archive database: %v", err)
	}
	defer db.Close()

	log.Println("✓ Connected to archive database")

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	server := rest.NewServer(port, db)
	go func() {
		log.Printf("Starting report API server on port %s", port)
		if err := server.Start(); err != nil {
			log.Printf("Report API server error: %v", err)
		}
	}()

	log.Printf("✓ Report API listening on :%s", port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down reportd gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Report API server shutdown error: %v", err)
	}

	log.Println("reportd stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

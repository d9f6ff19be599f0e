package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/ridwanfathin/menu-price-insights/internal/database"
)

func main() {
	migrationFile := flag.String("file", "scripts/migrations/001_create_pricing_schema.sql", "migration file to apply")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment variables.")
	}

	// Get database URL
	dbURL := os.Getenv("POSTGRES_DB_URL")
	if dbURL == "" {
		log.Fatalf("POSTGRES_DB_URL environment variable not set")
	}

	ctx := context.Background()

	// Connect to database
	db, err := database.NewPostgresDB(ctx, dbURL, 1)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer db.Close()

	// Read migration file
	migrationSQL, err := os.ReadFile(*migrationFile)
	if err != nil {
		log.Fatalf("Unable to read migration file: %v", err)
	}

	// Execute migration
	err = db.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, string(migrationSQL))
		return err
	})
	if err != nil {
		log.Fatalf("Failed to execute migration: %v", err)
	}

	fmt.Println("Migration successfully executed!")
}

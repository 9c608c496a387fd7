package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"stylecloset-service/internal/adapters/repositories"
	"stylecloset-service/internal/config"
	"stylecloset-service/internal/platform/db"
)

// dbtool initializes the schema and seeds demo closet items.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	sqlDB, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/closet.json")
	demoEmail := config.Get("DEMO_USER_EMAIL", "demo@example.com")
	demoPassword := config.Get("DEMO_USER_PASSWORD", "demo-password")
	if err := initAndSeed(sqlDB, seedPath, demoEmail, demoPassword); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(sqlDB *sql.DB, seedPath, demoEmail, demoPassword string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(sqlDB); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedDemoUser(sqlDB, demoEmail, demoPassword); err != nil {
		return err
	}
	if err := repositories.SeedFromJSON(sqlDB, seedPath); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}

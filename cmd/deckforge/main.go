package main

import (
	"log"
	"os"

	"github.com/deckforge-dev/deckforge/db"
	"github.com/deckforge-dev/deckforge/internal/auth"
	"github.com/deckforge-dev/deckforge/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	authenticator, err := auth.NewTokenAuthenticator(os.Getenv("JWT_SECRET"))

	if err != nil {
		log.Fatalf("Failed to initialize token authenticator: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := db.SeedCards(); err != nil {
		log.Fatalf("Failed to seed card catalog: %v", err)
	}

	r := router.NewRouter(authenticator)

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

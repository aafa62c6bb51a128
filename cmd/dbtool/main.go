package main

import (
	"context"
	"database/sql"
	"fmt"
	"guidance-service/internal/adapters/repositories"
	"guidance-service/internal/config"
	"guidance-service/internal/platform/db"
	"log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := initAndSeed(ctx, conn, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Println("Schema ready.")

	seeds, err := repositories.LoadPathSeeds(seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	log.Printf("Seeding database paths=%d...", len(seeds))
	if err := repositories.SeedPaths(ctx, conn, seeds); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}

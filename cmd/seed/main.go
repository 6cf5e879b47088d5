package main

import (
	"context"
	"log"
	"os"
	"time"

	"intern-match/internal/config"
	"intern-match/internal/database/migration"
	dbpostgres "intern-match/internal/database/postgres"
	"intern-match/internal/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect postgres: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := migration.Run(ctx, db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if err := seeder.RunAll(ctx, db, logger, seeder.DemoSeeder{}); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	logger.Printf("seed | state=complete")
}

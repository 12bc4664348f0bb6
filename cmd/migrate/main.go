package main

import (
	"flag"
	"fmt"
	"os"

	"financetracker/backend/config"
	"financetracker/backend/database"
	"financetracker/backend/logging"
	"financetracker/backend/migrations"
)

func main() {
	seed := flag.Bool("seed", false, "Insert sample transactions after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel, !cfg.IsProduction())

	// Initialize database connection
	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	dialect := database.DialectFor(cfg.Database.Driver)

	// Run migrations
	if err := migrations.RunMigrations(db, dialect); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if *seed {
		if cfg.IsProduction() {
			logger.Fatal().Msg("Refusing to seed sample data in production")
		}
		if err := migrations.SeedTestData(db, dialect); err != nil {
			logger.Fatal().Err(err).Msg("Failed to seed sample data")
		}
	}

	fmt.Println("Migrations completed successfully!")
}

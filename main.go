package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"financetracker/backend/api"
	"financetracker/backend/config"
	"financetracker/backend/database"
	"financetracker/backend/logging"
	"financetracker/backend/migrations"

	"github.com/rs/zerolog/log"
)

func main() {
	// Parse command line flags
	seed := flag.Bool("seed", false, "Insert sample transactions into an empty database")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := logging.New(cfg.LogLevel, !cfg.IsProduction())
	logger.Info().Str("env", cfg.Env).Str("driver", cfg.Database.Driver).Msg("Starting finance tracker")

	// Initialize database
	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	dialect := database.DialectFor(cfg.Database.Driver)

	logger.Info().Msg("Running migrations...")
	if err := migrations.RunMigrations(db, dialect); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if cfg.SeedData || *seed {
		if cfg.IsProduction() {
			logger.Warn().Msg("Refusing to seed sample data in production")
		} else if err := migrations.SeedTestData(db, dialect); err != nil {
			logger.Error().Err(err).Msg("Failed to seed sample data")
		}
	}

	server := api.NewServer(db, dialect, logger, api.Options{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Development:        !cfg.IsProduction(),
	})

	srv := &http.Server{
		Handler:      server.Handler(),
		Addr:         ":" + cfg.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	logger.Info().Msg("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

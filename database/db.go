package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"financetracker/backend/config"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Open connects to the configured store and verifies the connection. The
// returned handle is meant to be shared by the whole process.
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(cfg)
	case config.DriverSQLite, "":
		return openSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openSQLite(path string) (*sql.DB, error) {
	// Add connection parameters to better handle concurrency
	dsn := path + "?_journal=WAL&_timeout=10000&_busy_timeout=10000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if isMemoryPath(path) {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(time.Minute * 5)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	log.Info().Str("path", path).Msg("Connected to SQLite")
	return db, nil
}

func openPostgres(cfg config.DatabaseConfig) (*sql.DB, error) {
	connectionString := ConnectionString(cfg)
	log.Info().Str("dsn", MaskPassword(connectionString)).Msg("Connecting to PostgreSQL")

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	log.Info().Msg("Successfully connected to PostgreSQL")
	return db, nil
}

func isMemoryPath(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

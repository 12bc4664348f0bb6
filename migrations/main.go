package migrations

import (
	"database/sql"
	"fmt"

	"financetracker/backend/database"

	"github.com/rs/zerolog/log"
)

type migration struct {
	name string
	fn   func(*sql.DB, database.Dialect) error
}

// Add all migrations here in order
var migrations = []migration{
	{"create_transactions_table", CreateTransactionsTable},
	{"add_transaction_indexes", AddTransactionIndexes},
}

// RunMigrations applies every migration that has not been recorded yet.
func RunMigrations(db *sql.DB, dialect database.Dialect) error {
	log.Info().Str("dialect", dialect.String()).Msg("Running migrations...")

	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	if dialect == database.Postgres {
		idColumn = "id SERIAL PRIMARY KEY"
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			` + idColumn + `,
			name TEXT NOT NULL UNIQUE,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		var count int
		err := db.QueryRow(dialect.Rebind("SELECT COUNT(*) FROM migrations WHERE name = ?"), m.name).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}

		if count > 0 {
			log.Debug().Str("migration", m.name).Msg("Skipping already applied migration")
			continue
		}

		log.Info().Str("migration", m.name).Msg("Applying migration")
		if err := m.fn(db, dialect); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", m.name, err)
		}

		_, err = db.Exec(dialect.Rebind("INSERT INTO migrations (name) VALUES (?)"), m.name)
		if err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}
	}

	log.Info().Msg("All migrations completed successfully")
	return nil
}

package migrations

import (
	"database/sql"
	"fmt"

	"financetracker/backend/database"
)

// CreateTransactionsTable creates the transactions table.
func CreateTransactionsTable(db *sql.DB, dialect database.Dialect) error {
	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	if dialect == database.Postgres {
		idColumn = "id BIGSERIAL PRIMARY KEY"
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS transactions (
			` + idColumn + `,
			type TEXT NOT NULL CHECK (type IN ('Income', 'Expense')),
			amount NUMERIC(10,2) NOT NULL,
			category TEXT NOT NULL,
			date DATE NOT NULL,
			description TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create transactions table: %w", err)
	}
	return nil
}

// AddTransactionIndexes indexes the columns used by the date and category
// filters.
func AddTransactionIndexes(db *sql.DB, _ database.Dialect) error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions (category)",
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

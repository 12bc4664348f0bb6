package migrations

import (
	"database/sql"
	"fmt"

	"financetracker/backend/database"

	"github.com/rs/zerolog/log"
)

// SeedTestData inserts sample transactions into an empty transactions table.
// Callers refuse to seed in production.
func SeedTestData(db *sql.DB, dialect database.Dialect) (err error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		return fmt.Errorf("failed to count transactions: %w", err)
	}
	if count > 0 {
		log.Info().Int("existing", count).Msg("Skipping test data seeding - transactions table is not empty")
		return nil
	}

	log.Info().Msg("Seeding test data...")

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	sampleTransactions := []struct {
		txType      string
		amount      string
		category    string
		date        string
		description interface{}
	}{
		{txType: "Income", amount: "2500.00", category: "Salary", date: "2024-01-25", description: "January salary"},
		{txType: "Expense", amount: "1200.00", category: "Housing", date: "2024-01-01", description: "Rent"},
		{txType: "Expense", amount: "42.50", category: "Food", date: "2024-01-15", description: "Groceries"},
		{txType: "Expense", amount: "85.99", category: "Utilities", date: "2024-01-10", description: "Internet bill"},
		{txType: "Expense", amount: "18.00", category: "Entertainment", date: "2024-02-03", description: nil},
		{txType: "Income", amount: "300.00", category: "Freelance", date: "2024-02-12", description: "Logo design"},
	}

	insert := dialect.Rebind(`
		INSERT INTO transactions (type, amount, category, date, description)
		VALUES (?, ?, ?, ?, ?)
	`)
	for _, sample := range sampleTransactions {
		_, err = tx.Exec(insert, sample.txType, sample.amount, sample.category, sample.date, sample.description)
		if err != nil {
			return fmt.Errorf("failed to insert sample %s transaction: %w", sample.category, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info().Int("inserted", len(sampleTransactions)).Msg("Test data seeded successfully")
	return nil
}
